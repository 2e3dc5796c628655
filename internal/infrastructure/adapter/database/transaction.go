package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// ErrNoTransaction is returned by Commit and Rollback when ctx carries no transaction
var ErrNoTransaction = errors.New("no transaction found in context")

type txKey struct{}

// openTx is what Begin stores in the context
type openTx struct {
	db     *gorm.DB
	cancel context.CancelFunc
}

// Deadline bounds a transaction and every statement issued with its context
type Deadline func(ctx context.Context) (context.Context, context.CancelFunc)

// UnitOfWork keeps the open transaction in the context handed back by Begin
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
	deadline    Deadline
}

// NewUnitOfWork creates a new UnitOfWork instance. A nil deadline leaves transactions unbounded.
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, errorMapper *ErrorMapper, deadline Deadline) persistence.UnitOfWork {
	if deadline == nil {
		deadline = context.WithCancel
	}
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		errorMapper: errorMapper,
		deadline:    deadline,
	}
}

// Begin starts a transaction at the server's default isolation level.
// The returned context carries the query deadline until Commit or Rollback.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	txCtx, cancel := u.deadline(ctx)

	tx := u.db.WithContext(txCtx).Begin()
	if err := tx.Error; err != nil {
		cancel()
		u.logger.Error("Failed to begin transaction", u.fields(ctx, err))
		return ctx, fmt.Errorf("failed to begin transaction: %w", u.errorMapper.MapError(err, "begin"))
	}

	u.logger.Debug("Transaction started", u.fields(ctx, nil))
	return context.WithValue(txCtx, txKey{}, &openTx{db: tx, cancel: cancel}), nil
}

// Commit commits the transaction stored in ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}
	defer tx.cancel()

	if err := tx.db.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", u.fields(ctx, err))
		return fmt.Errorf("failed to commit transaction: %w", u.errorMapper.MapError(err, "commit"))
	}

	u.logger.Debug("Transaction committed", u.fields(ctx, nil))
	return nil
}

// Rollback rolls back the transaction stored in ctx.
// Rolling back a transaction that already ended is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}
	defer tx.cancel()

	err := tx.db.Rollback().Error
	switch {
	case err == nil:
		u.logger.Debug("Transaction rolled back", u.fields(ctx, nil))
		return nil
	case errors.Is(err, sql.ErrTxDone), errors.Is(err, gorm.ErrInvalidTransaction):
		u.logger.Warn("Transaction has already been committed or rolled back", u.fields(ctx, err))
		return nil
	default:
		u.logger.Error("Failed to rollback transaction", u.fields(ctx, err))
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
}

// GetCupcakeRepository returns a cupcake repository bound to the transaction in ctx.
// Without a transaction the repository runs each statement on its own.
func (u *UnitOfWork) GetCupcakeRepository(ctx context.Context) persistence.CupcakeRepository {
	if tx, ok := txFromContext(ctx); ok {
		return repository.NewCupcakeRepository(tx.db, u.logger)
	}
	return repository.NewCupcakeRepository(u.db.WithContext(ctx), u.logger)
}

func txFromContext(ctx context.Context) (*openTx, bool) {
	tx, ok := ctx.Value(txKey{}).(*openTx)
	return tx, ok && tx != nil
}

func (u *UnitOfWork) fields(ctx context.Context, err error) map[string]any {
	fields := map[string]any{
		"request_id": coreport.RequestIDFromContext(ctx),
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	return fields
}
