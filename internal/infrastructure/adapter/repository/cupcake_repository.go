package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CupcakeRepository implements the CupcakeRepository port using GORM
type CupcakeRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCupcakeRepository creates a new CupcakeRepository instance
func NewCupcakeRepository(db *gorm.DB, logger coreport.Logger) *CupcakeRepository {
	return &CupcakeRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func modelToEntity(m *model.Cupcake) *entity.Cupcake {
	return &entity.Cupcake{
		ID:     m.ID,
		Flavor: m.Flavor,
		Size:   m.Size,
		Rating: m.Rating,
		Image:  m.Image,
	}
}

func entityToModel(c *entity.Cupcake) *model.Cupcake {
	image := c.Image
	if image == "" {
		image = entity.DefaultImage
	}
	return &model.Cupcake{
		ID:     c.ID,
		Flavor: c.Flavor,
		Size:   c.Size,
		Rating: c.Rating,
		Image:  image,
	}
}

// handleDatabaseError standardizes database error handling
func (r *CupcakeRepository) handleDatabaseError(operation string, err error, id uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Cupcake not found", map[string]any{
			"cupcake_id": id,
			"operation":  operation,
		})
		return errs.ErrCupcakeNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"cupcake_id": id,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})

	switch r.errorClassifier.Classify(err) {
	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case ConnectionError, TimeoutError:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
}

// List retrieves every cupcake ordered by ID
func (r *CupcakeRepository) List(ctx context.Context) ([]*entity.Cupcake, error) {
	var rows []model.Cupcake
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing cupcakes", err, 0)
	}

	cupcakes := make([]*entity.Cupcake, 0, len(rows))
	for i := range rows {
		cupcakes = append(cupcakes, modelToEntity(&rows[i]))
	}

	r.logger.Debug("Cupcakes retrieved", map[string]any{
		"count": len(cupcakes),
	})

	return cupcakes, nil
}

// GetByID retrieves a cupcake by ID
func (r *CupcakeRepository) GetByID(ctx context.Context, id uint64) (*entity.Cupcake, error) {
	var row model.Cupcake
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting cupcake", err, id)
	}

	return modelToEntity(&row), nil
}

// Create inserts a new cupcake and copies the generated ID back onto the entity
func (r *CupcakeRepository) Create(ctx context.Context, cupcake *entity.Cupcake) error {
	row := entityToModel(cupcake)
	row.ID = 0

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return r.handleDatabaseError("creating cupcake", err, 0)
	}

	cupcake.ID = row.ID
	cupcake.Image = row.Image

	r.logger.Debug("Cupcake inserted", map[string]any{
		"cupcake_id": cupcake.ID,
	})
	return nil
}

// Update overwrites every column of an existing cupcake
func (r *CupcakeRepository) Update(ctx context.Context, cupcake *entity.Cupcake) error {
	row := entityToModel(cupcake)

	result := r.db.WithContext(ctx).Model(&model.Cupcake{}).
		Where("id = ?", cupcake.ID).
		Updates(map[string]any{
			"flavor": row.Flavor,
			"size":   row.Size,
			"rating": row.Rating,
			"image":  row.Image,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating cupcake", result.Error, cupcake.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCupcakeNotFound
	}

	cupcake.Image = row.Image
	return nil
}

// Delete removes a cupcake permanently
func (r *CupcakeRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Cupcake{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting cupcake", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCupcakeNotFound
	}

	return nil
}

// Count returns the number of stored cupcakes
func (r *CupcakeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Cupcake{}).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting cupcakes", err, 0)
	}
	return count, nil
}
