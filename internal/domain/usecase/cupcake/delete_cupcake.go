package cupcake

import (
	"context"

	errs "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/persistence"
)

// DeleteCupcake permanently removes a cupcake
func (u *CupcakeUseCase) DeleteCupcake(ctx context.Context, id uint64) error {
	if id == 0 {
		return errs.NewCupcakeError("delete", id, errs.ErrCupcakeNotFound)
	}

	err := u.withinTransaction(ctx, "delete cupcake", func(txCtx context.Context, repo persistence.CupcakeRepository) error {
		if _, err := repo.GetByID(txCtx, id); err != nil {
			return err
		}
		return repo.Delete(txCtx, id)
	})
	if err != nil {
		err = errs.NewCupcakeError("delete", id, err)
		u.logFailure(err)
		return err
	}

	u.logger.Info("Cupcake deleted", map[string]any{
		"cupcakeId": id,
	})

	return nil
}
