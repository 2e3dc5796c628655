package migration

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"gorm.io/gorm"
)

// BackfillDefaultImage moves a 1.0.0 schema to 1.1.0.
// Rows stored without an image get DefaultImage and the column becomes NOT NULL.
type BackfillDefaultImage struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillDefaultImage creates a new migration instance
func NewBackfillDefaultImage(db *gorm.DB, logger coreport.Logger) *BackfillDefaultImage {
	return &BackfillDefaultImage{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *BackfillDefaultImage) Run(ctx context.Context) error {
	m.logger.Info("Backfilling default image on cupcakes", nil)

	hasImage, err := m.checkColumnExists(ctx)
	if err != nil {
		return err
	}
	if !hasImage {
		m.logger.Info("cupcakes.image column is missing, nothing to backfill", nil)
		return nil
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(`UPDATE cupcakes SET image = ? WHERE image IS NULL OR image = ''`, entity.DefaultImage)
		if result.Error != nil {
			m.logger.Error("Failed to backfill cupcake images", map[string]any{"error": result.Error.Error()})
			return result.Error
		}

		// DDL cannot take bind parameters
		setDefault := fmt.Sprintf(`ALTER TABLE cupcakes ALTER COLUMN image SET DEFAULT '%s'`, entity.DefaultImage)
		if err := tx.Exec(setDefault).Error; err != nil {
			m.logger.Error("Failed to set image column default", map[string]any{"error": err.Error()})
			return err
		}

		if err := tx.Exec(`ALTER TABLE cupcakes ALTER COLUMN image SET NOT NULL`).Error; err != nil {
			m.logger.Error("Failed to make image column NOT NULL", map[string]any{"error": err.Error()})
			return err
		}

		m.logger.Info("Backfilled default image on cupcakes", map[string]any{
			"rows_updated": result.RowsAffected,
		})
		return nil
	})
}

func (m *BackfillDefaultImage) checkColumnExists(ctx context.Context) (bool, error) {
	var columns []struct {
		ColumnName string `gorm:"column:column_name"`
	}

	err := m.db.WithContext(ctx).Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = 'cupcakes' AND column_name = 'image'
	`).Scan(&columns).Error
	if err != nil {
		m.logger.Error("Failed to check column existence", map[string]any{"error": err.Error()})
		return false, err
	}

	return len(columns) > 0, nil
}
