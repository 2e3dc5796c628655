package cupcake

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/usecase"
)

// CupcakeUseCase implements the cupcake operations on top of a unit of work
type CupcakeUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCupcakeUseCase creates a new cupcake use case instance
func NewCupcakeUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.CupcakeUseCase {
	return &CupcakeUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// withinTransaction runs fn against a repository bound to a fresh transaction.
// fn must issue its statements with txCtx, which carries the query deadline.
// The transaction is committed when fn succeeds and rolled back otherwise.
func (u *CupcakeUseCase) withinTransaction(
	ctx context.Context,
	operation string,
	fn func(txCtx context.Context, repo persistence.CupcakeRepository) error,
) error {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return fmt.Errorf("%s: %w", operation, err)
	}

	if err := fn(txCtx, u.uow.GetCupcakeRepository(txCtx)); err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Failed to rollback transaction", map[string]any{
				"operation": operation,
				"error":     rbErr.Error(),
			})
		}
		return err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return fmt.Errorf("%s: %w", operation, err)
	}

	return nil
}
