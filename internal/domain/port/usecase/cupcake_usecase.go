package usecase

import (
	"context"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
)

// CreateCupcakeInput carries a create request after decoding.
// Nil means the field was absent from the request.
type CreateCupcakeInput struct {
	Flavor *string
	Size   *string
	Rating *float64
	Image  *string
}

// CupcakeUseCase defines the operations exposed under /api/cupcakes
type CupcakeUseCase interface {
	// ListCupcakes returns all cupcakes (GET /api/cupcakes)
	ListCupcakes(ctx context.Context) ([]*entity.Cupcake, error)

	// CreateCupcake validates the input and stores a new cupcake (POST /api/cupcakes)
	CreateCupcake(ctx context.Context, input CreateCupcakeInput) (*entity.Cupcake, error)

	// GetCupcake returns a single cupcake (GET /api/cupcakes/{id})
	GetCupcake(ctx context.Context, id uint64) (*entity.Cupcake, error)

	// UpdateCupcake applies a partial update (PATCH /api/cupcakes/{id})
	UpdateCupcake(ctx context.Context, id uint64, update entity.CupcakeUpdate) (*entity.Cupcake, error)

	// DeleteCupcake removes a cupcake (DELETE /api/cupcakes/{id})
	DeleteCupcake(ctx context.Context, id uint64) error

	// SeedCupcakes inserts the sample cupcakes when the table is empty
	SeedCupcakes(ctx context.Context) (int, error)
}
