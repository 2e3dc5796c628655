package persistence

import (
	"context"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
)

// CupcakeRepository defines single-row operations on the cupcakes table
type CupcakeRepository interface {
	// List retrieves every stored cupcake in primary key order
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context) ([]*entity.Cupcake, error)

	// GetByID retrieves a cupcake by ID
	//
	// Possible errors:
	// - ErrCupcakeNotFound: If no cupcake with the given ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Cupcake, error)

	// Create inserts a new cupcake and sets its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If a column constraint is violated
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, cupcake *entity.Cupcake) error

	// Update overwrites every column of an existing cupcake
	//
	// Possible errors:
	// - ErrCupcakeNotFound: If the cupcake no longer exists
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, cupcake *entity.Cupcake) error

	// Delete removes a cupcake permanently
	//
	// Possible errors:
	// - ErrCupcakeNotFound: If the cupcake no longer exists
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// Count returns the number of stored cupcakes
	Count(ctx context.Context) (int64, error)
}
