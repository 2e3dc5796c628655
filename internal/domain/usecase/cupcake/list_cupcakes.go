package cupcake

import (
	"context"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/persistence"
)

// ListCupcakes returns every stored cupcake
func (u *CupcakeUseCase) ListCupcakes(ctx context.Context) ([]*entity.Cupcake, error) {
	start := u.timeProvider.Now()

	var cupcakes []*entity.Cupcake
	err := u.withinTransaction(ctx, "list cupcakes", func(txCtx context.Context, repo persistence.CupcakeRepository) error {
		var err error
		cupcakes, err = repo.List(txCtx)
		return err
	})
	if err != nil {
		err = errs.NewCupcakeError("list", 0, err)
		u.logFailure(err)
		return nil, err
	}

	if cupcakes == nil {
		cupcakes = []*entity.Cupcake{}
	}

	u.logger.Debug("Cupcakes listed", map[string]any{
		"count":      len(cupcakes),
		"elapsed_ms": u.timeProvider.Since(start).Milliseconds(),
	})

	return cupcakes, nil
}
