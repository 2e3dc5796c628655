package cupcake

import (
	"context"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/persistence"
)

// UpdateCupcake overwrites the fields present in update and leaves the others untouched
func (u *CupcakeUseCase) UpdateCupcake(ctx context.Context, id uint64, update entity.CupcakeUpdate) (*entity.Cupcake, error) {
	if id == 0 {
		return nil, errs.NewCupcakeError("update", id, errs.ErrCupcakeNotFound)
	}

	var cupcake *entity.Cupcake
	err := u.withinTransaction(ctx, "update cupcake", func(txCtx context.Context, repo persistence.CupcakeRepository) error {
		var err error
		cupcake, err = repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if update.IsEmpty() {
			return nil
		}

		cupcake.Apply(update)
		return repo.Update(txCtx, cupcake)
	})
	if err != nil {
		err = errs.NewCupcakeError("update", id, err)
		u.logFailure(err)
		return nil, err
	}

	u.logger.Info("Cupcake updated", map[string]any{
		"cupcakeId": id,
		"fields":    update.Fields(),
	})

	return cupcake, nil
}
