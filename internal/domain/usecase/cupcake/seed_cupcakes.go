package cupcake

import (
	"context"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/persistence"
)

// sampleCupcakes are inserted by SeedCupcakes into an empty table
var sampleCupcakes = []entity.Cupcake{
	{Flavor: "cherry", Size: "large", Rating: 5, Image: "https://www.bakedbyrachel.com/wp-content/uploads/2018/01/chocolatecherrycupcakes_bakedbyrachel_1.jpg"},
	{Flavor: "chocolate", Size: "small", Rating: 9, Image: "https://www.cupcakeproject.com/wp-content/uploads/2016/10/chocolate-cupcakes-with-chocolate-frosting-11.jpg"},
	{Flavor: "vanilla", Size: "medium", Rating: 7, Image: entity.DefaultImage},
}

// SeedCupcakes inserts the sample cupcakes when the table is empty.
// It returns how many cupcakes were inserted.
func (u *CupcakeUseCase) SeedCupcakes(ctx context.Context) (int, error) {
	inserted := 0

	err := u.withinTransaction(ctx, "seed cupcakes", func(txCtx context.Context, repo persistence.CupcakeRepository) error {
		count, err := repo.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, sample := range sampleCupcakes {
			cupcake := sample
			if err := repo.Create(txCtx, &cupcake); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		u.logger.Error("Failed to seed cupcakes", map[string]any{
			"error": err.Error(),
		})
		return 0, err
	}

	return inserted, nil
}
