package cupcake

import (
	"context"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/persistence"
)

// GetCupcake retrieves a single cupcake by ID
func (u *CupcakeUseCase) GetCupcake(ctx context.Context, id uint64) (*entity.Cupcake, error) {
	if id == 0 {
		return nil, errs.NewCupcakeError("get", id, errs.ErrCupcakeNotFound)
	}

	var cupcake *entity.Cupcake
	err := u.withinTransaction(ctx, "get cupcake", func(txCtx context.Context, repo persistence.CupcakeRepository) error {
		var err error
		cupcake, err = repo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		err = errs.NewCupcakeError("get", id, err)
		u.logFailure(err)
		return nil, err
	}

	return cupcake, nil
}

// logFailure logs missing cupcakes at warn level and everything else as an error
func (u *CupcakeUseCase) logFailure(err error) {
	if errs.IsNotFoundError(err) {
		u.logger.Warn("Cupcake not found", errs.LogFields(err))
		return
	}
	u.logger.Error("Cupcake operation failed", errs.LogFields(err))
}
