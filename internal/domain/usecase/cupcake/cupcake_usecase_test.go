package cupcake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/cupcakes/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/cupcakes/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txMarker struct{}

type testDeps struct {
	uow    *persistencemocks.MockUnitOfWork
	repo   *persistencemocks.MockCupcakeRepository
	time   *coremocks.MockTimeProvider
	logger *coremocks.MockLogger
	txCtx  context.Context
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	d := &testDeps{
		uow:    persistencemocks.NewMockUnitOfWork(t),
		repo:   persistencemocks.NewMockCupcakeRepository(t),
		time:   coremocks.NewMockTimeProvider(t),
		logger: coremocks.NewMockLogger(t),
		txCtx:  context.WithValue(context.Background(), txMarker{}, "tx"),
	}

	d.time.EXPECT().Now().Return(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	d.time.EXPECT().Since(mock.Anything).Return(time.Millisecond).Maybe()
	d.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return d
}

// expectTransaction sets up Begin and GetCupcakeRepository, then Commit or Rollback
func (d *testDeps) expectTransaction(commit bool) {
	d.uow.EXPECT().Begin(mock.Anything).Return(d.txCtx, nil).Once()
	d.uow.EXPECT().GetCupcakeRepository(d.txCtx).Return(d.repo).Once()
	if commit {
		d.uow.EXPECT().Commit(d.txCtx).Return(nil).Once()
	} else {
		d.uow.EXPECT().Rollback(d.txCtx).Return(nil).Once()
	}
}

func (d *testDeps) useCase() usecase.CupcakeUseCase {
	return NewCupcakeUseCase(d.uow, d.time, d.logger)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func sampleCupcake() *entity.Cupcake {
	return &entity.Cupcake{ID: 1, Flavor: "TestFlavor", Size: "TestSize", Rating: 5, Image: "http://test.com/cupcake.jpg"}
}

func TestListCupcakes(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns all cupcakes", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)

		stored := []*entity.Cupcake{
			sampleCupcake(),
			{ID: 2, Flavor: "TestFlavor2", Size: "TestSize2", Rating: 10, Image: "http://test.com/cupcake2.jpg"},
		}
		d.repo.EXPECT().List(mock.Anything).Return(stored, nil).Once()

		cupcakes, err := d.useCase().ListCupcakes(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, cupcakes)
	})

	t.Run("Empty table yields an empty slice", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)
		d.repo.EXPECT().List(mock.Anything).Return(nil, nil).Once()

		cupcakes, err := d.useCase().ListCupcakes(ctx)

		require.NoError(t, err)
		assert.NotNil(t, cupcakes)
		assert.Empty(t, cupcakes)
	})

	t.Run("Repository failure rolls back", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(false)
		d.repo.EXPECT().List(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		cupcakes, err := d.useCase().ListCupcakes(ctx)

		assert.Nil(t, cupcakes)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Begin failure is reported", func(t *testing.T) {
		d := newTestDeps(t)
		d.uow.EXPECT().Begin(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		cupcakes, err := d.useCase().ListCupcakes(ctx)

		assert.Nil(t, cupcakes)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestCreateCupcake(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores all fields and returns the assigned ID", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)
		d.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Cupcake) bool {
			return c.Flavor == "Vanilla" && c.Size == "Large" && c.Rating == 8 && c.Image == "http://x/y.jpg"
		})).Run(func(_ context.Context, c *entity.Cupcake) {
			c.ID = 42
		}).Return(nil).Once()

		cupcake, err := d.useCase().CreateCupcake(ctx, usecase.CreateCupcakeInput{
			Flavor: strPtr("Vanilla"),
			Size:   strPtr("Large"),
			Rating: floatPtr(8),
			Image:  strPtr("http://x/y.jpg"),
		})

		require.NoError(t, err)
		assert.Equal(t, &entity.Cupcake{ID: 42, Flavor: "Vanilla", Size: "Large", Rating: 8, Image: "http://x/y.jpg"}, cupcake)
	})

	t.Run("Defaults the image", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)
		d.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Cupcake) bool {
			return c.Image == entity.DefaultImage
		})).Return(nil).Once()

		cupcake, err := d.useCase().CreateCupcake(ctx, usecase.CreateCupcakeInput{
			Flavor: strPtr("Cherry"),
			Size:   strPtr("Small"),
			Rating: floatPtr(3),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultImage, cupcake.Image)
	})

	t.Run("Missing required field never touches the store", func(t *testing.T) {
		d := newTestDeps(t)

		cupcake, err := d.useCase().CreateCupcake(ctx, usecase.CreateCupcakeInput{
			Flavor: strPtr("Cherry"),
			Rating: floatPtr(3),
		})

		assert.Nil(t, cupcake)
		assert.ErrorIs(t, err, errs.ErrMissingField)

		var vErr *errs.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "size", vErr.Field)
	})

	t.Run("Insert failure rolls back", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(false)
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrConstraintViolation).Once()

		cupcake, err := d.useCase().CreateCupcake(ctx, usecase.CreateCupcakeInput{
			Flavor: strPtr("Cherry"),
			Size:   strPtr("Small"),
			Rating: floatPtr(3),
		})

		assert.Nil(t, cupcake)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("Commit failure is reported", func(t *testing.T) {
		d := newTestDeps(t)
		d.uow.EXPECT().Begin(mock.Anything).Return(d.txCtx, nil).Once()
		d.uow.EXPECT().GetCupcakeRepository(d.txCtx).Return(d.repo).Once()
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		d.uow.EXPECT().Commit(d.txCtx).Return(errors.New("commit failed")).Once()

		cupcake, err := d.useCase().CreateCupcake(ctx, usecase.CreateCupcakeInput{
			Flavor: strPtr("Cherry"),
			Size:   strPtr("Small"),
			Rating: floatPtr(3),
		})

		assert.Nil(t, cupcake)
		assert.ErrorContains(t, err, "commit failed")
	})
}

func TestGetCupcake(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)
		d.repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(sampleCupcake(), nil).Once()

		cupcake, err := d.useCase().GetCupcake(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, sampleCupcake(), cupcake)
	})

	t.Run("Not found", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(false)
		d.repo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrCupcakeNotFound).Once()

		cupcake, err := d.useCase().GetCupcake(ctx, 99)

		assert.Nil(t, cupcake)
		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("Not found is logged as a warning with its context", func(t *testing.T) {
		d := newTestDeps(t)
		d.logger = coremocks.NewMockLogger(t)
		d.expectTransaction(false)
		d.repo.EXPECT().GetByID(d.txCtx, uint64(99)).Return(nil, errs.ErrCupcakeNotFound).Once()
		d.logger.EXPECT().Warn("Cupcake not found", map[string]any{
			"error_type": "cupcake_error",
			"cupcake_id": uint64(99),
			"operation":  "get",
			"error":      errs.ErrCupcakeNotFound.Error(),
			"error_code": errs.CodeCupcakeNotFound,
		}).Once()

		_, err := d.useCase().GetCupcake(ctx, 99)

		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("Storage failure is logged as an error", func(t *testing.T) {
		d := newTestDeps(t)
		d.logger = coremocks.NewMockLogger(t)
		d.expectTransaction(false)
		d.repo.EXPECT().GetByID(d.txCtx, uint64(3)).Return(nil, errs.ErrDatabaseConnection).Once()
		d.logger.EXPECT().Error("Cupcake operation failed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["operation"] == "get" && fields["error_code"] == errs.CodeDatabaseUnavailable
		})).Once()

		_, err := d.useCase().GetCupcake(ctx, 3)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Zero ID is never stored", func(t *testing.T) {
		d := newTestDeps(t)

		cupcake, err := d.useCase().GetCupcake(ctx, 0)

		assert.Nil(t, cupcake)
		assert.ErrorIs(t, err, errs.ErrCupcakeNotFound)
	})
}

func TestUpdateCupcake(t *testing.T) {
	ctx := context.Background()

	t.Run("Only rating changes", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)
		// Statements run on the transaction context so the query deadline applies
		d.repo.EXPECT().GetByID(d.txCtx, uint64(1)).Return(sampleCupcake(), nil).Once()
		d.repo.EXPECT().Update(d.txCtx, mock.MatchedBy(func(c *entity.Cupcake) bool {
			return c.Rating == 9 && c.Flavor == "TestFlavor" && c.Size == "TestSize" && c.Image == "http://test.com/cupcake.jpg"
		})).Return(nil).Once()

		cupcake, err := d.useCase().UpdateCupcake(ctx, 1, entity.CupcakeUpdate{Rating: floatPtr(9)})

		require.NoError(t, err)
		assert.Equal(t, &entity.Cupcake{ID: 1, Flavor: "TestFlavor", Size: "TestSize", Rating: 9, Image: "http://test.com/cupcake.jpg"}, cupcake)
	})

	t.Run("Empty image is stored and returned as the default", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)
		d.repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(sampleCupcake(), nil).Once()
		d.repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(c *entity.Cupcake) bool {
			return c.Image == entity.DefaultImage
		})).Return(nil).Once()

		cupcake, err := d.useCase().UpdateCupcake(ctx, 1, entity.CupcakeUpdate{Image: strPtr("")})

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultImage, cupcake.Image)
	})

	t.Run("Empty update skips the write", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)
		d.repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(sampleCupcake(), nil).Once()

		cupcake, err := d.useCase().UpdateCupcake(ctx, 1, entity.CupcakeUpdate{})

		require.NoError(t, err)
		assert.Equal(t, sampleCupcake(), cupcake)
	})

	t.Run("Missing cupcake", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(false)
		d.repo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errs.ErrCupcakeNotFound).Once()

		cupcake, err := d.useCase().UpdateCupcake(ctx, 7, entity.CupcakeUpdate{Flavor: strPtr("Lemon")})

		assert.Nil(t, cupcake)
		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("Write failure rolls back", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(false)
		d.repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(sampleCupcake(), nil).Once()
		d.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		cupcake, err := d.useCase().UpdateCupcake(ctx, 1, entity.CupcakeUpdate{Size: strPtr("Huge")})

		assert.Nil(t, cupcake)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestDeleteCupcake(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes an existing cupcake", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)
		d.repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(sampleCupcake(), nil).Once()
		d.repo.EXPECT().Delete(mock.Anything, uint64(1)).Return(nil).Once()

		err := d.useCase().DeleteCupcake(ctx, 1)

		assert.NoError(t, err)
	})

	t.Run("Missing cupcake", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(false)
		d.repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(nil, errs.ErrCupcakeNotFound).Once()

		err := d.useCase().DeleteCupcake(ctx, 1)

		assert.True(t, errs.IsNotFoundError(err))
	})
}

func TestSeedCupcakes(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeds an empty table", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)
		d.repo.EXPECT().Count(mock.Anything).Return(int64(0), nil).Once()
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(len(sampleCupcakes))

		inserted, err := d.useCase().SeedCupcakes(ctx)

		require.NoError(t, err)
		assert.Equal(t, len(sampleCupcakes), inserted)
	})

	t.Run("Leaves a populated table alone", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(true)
		d.repo.EXPECT().Count(mock.Anything).Return(int64(4), nil).Once()

		inserted, err := d.useCase().SeedCupcakes(ctx)

		require.NoError(t, err)
		assert.Zero(t, inserted)
	})

	t.Run("Insert failure rolls back the whole seed", func(t *testing.T) {
		d := newTestDeps(t)
		d.expectTransaction(false)
		d.repo.EXPECT().Count(mock.Anything).Return(int64(0), nil).Once()
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		inserted, err := d.useCase().SeedCupcakes(ctx)

		assert.Zero(t, inserted)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
