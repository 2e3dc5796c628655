package persistence

import "context"

// UnitOfWork scopes repository operations to a single database transaction.
// The transaction travels inside the context returned by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(txCtx context.Context) error
	// Rollback is safe to call after Commit
	Rollback(txCtx context.Context) error

	// GetCupcakeRepository binds to the transaction in ctx, or to the plain pool when there is none
	GetCupcakeRepository(ctx context.Context) CupcakeRepository
}
