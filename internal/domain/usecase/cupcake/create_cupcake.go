package cupcake

import (
	"context"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/usecase"
)

// CreateCupcake validates the input and stores a new cupcake.
// The image falls back to entity.DefaultImage when absent.
func (u *CupcakeUseCase) CreateCupcake(ctx context.Context, input usecase.CreateCupcakeInput) (*entity.Cupcake, error) {
	cupcake, err := entity.NewCupcake(input.Flavor, input.Size, input.Rating, input.Image)
	if err != nil {
		u.logger.Warn("Rejected cupcake creation", errs.LogFields(err))
		return nil, err
	}

	err = u.withinTransaction(ctx, "create cupcake", func(txCtx context.Context, repo persistence.CupcakeRepository) error {
		return repo.Create(txCtx, cupcake)
	})
	if err != nil {
		err = errs.NewCupcakeError("create", 0, err)
		u.logFailure(err)
		return nil, err
	}

	u.logger.Info("Cupcake created", map[string]any{
		"cupcakeId": cupcake.ID,
		"flavor":    cupcake.Flavor,
		"size":      cupcake.Size,
	})

	return cupcake, nil
}
