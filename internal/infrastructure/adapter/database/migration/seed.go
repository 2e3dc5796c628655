package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/usecase"
)

// SeedDefaultCupcakes fills an empty cupcakes table with sample records
func SeedDefaultCupcakes(ctx context.Context, cupcakeService usecase.CupcakeUseCase, logger coreport.Logger) error {
	inserted, err := cupcakeService.SeedCupcakes(ctx)
	if err != nil {
		logger.Error("Failed to seed cupcakes", map[string]any{"error": err.Error()})
		return err
	}

	if inserted == 0 {
		logger.Info("Cupcakes table already populated, skipping seed", nil)
		return nil
	}

	logger.Info("Seeded sample cupcakes", map[string]any{"count": inserted})
	return nil
}
