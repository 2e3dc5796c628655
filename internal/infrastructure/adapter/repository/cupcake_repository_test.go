package repository_test

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*repository.CupcakeRepository, *database.TestDBManager) {
	t.Helper()

	log := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, log)
	testDB.ConnectOrSkip(t)
	testDB.SetupTestDB(t)

	return repository.NewCupcakeRepository(testDB.Manager.DB(), log), testDB
}

func newCupcake(flavor string) *entity.Cupcake {
	return &entity.Cupcake{Flavor: flavor, Size: "Large", Rating: 8, Image: "http://x/" + flavor + ".jpg"}
}

func TestCupcakeRepository(t *testing.T) {
	repo, testDB := setupRepository(t)
	ctx := context.Background()

	t.Run("Create assigns an ID and round-trips", func(t *testing.T) {
		testDB.TruncateAllTables(t)

		cupcake := newCupcake("Vanilla")
		require.NoError(t, repo.Create(ctx, cupcake))
		assert.NotZero(t, cupcake.ID)

		stored, err := repo.GetByID(ctx, cupcake.ID)
		require.NoError(t, err)
		assert.Equal(t, cupcake, stored)
	})

	t.Run("Create applies the default image", func(t *testing.T) {
		testDB.TruncateAllTables(t)

		cupcake := &entity.Cupcake{Flavor: "Cherry", Size: "Small", Rating: 5}
		require.NoError(t, repo.Create(ctx, cupcake))

		stored, err := repo.GetByID(ctx, cupcake.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultImage, stored.Image)
	})

	t.Run("List is ordered by ID and reflects deletes", func(t *testing.T) {
		testDB.TruncateAllTables(t)

		var ids []uint64
		for _, flavor := range []string{"a", "b", "c", "d"} {
			cupcake := newCupcake(flavor)
			require.NoError(t, repo.Create(ctx, cupcake))
			ids = append(ids, cupcake.ID)
		}
		require.NoError(t, repo.Delete(ctx, ids[1]))

		cupcakes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, cupcakes, 3)
		assert.Equal(t, []uint64{ids[0], ids[2], ids[3]}, []uint64{cupcakes[0].ID, cupcakes[1].ID, cupcakes[2].ID})

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("List on an empty table is empty, not nil", func(t *testing.T) {
		testDB.TruncateAllTables(t)

		cupcakes, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, cupcakes)
		assert.Empty(t, cupcakes)
	})

	t.Run("Update overwrites the stored row", func(t *testing.T) {
		testDB.TruncateAllTables(t)

		cupcake := newCupcake("Vanilla")
		require.NoError(t, repo.Create(ctx, cupcake))

		cupcake.Rating = 9.5
		require.NoError(t, repo.Update(ctx, cupcake))

		stored, err := repo.GetByID(ctx, cupcake.ID)
		require.NoError(t, err)
		assert.Equal(t, 9.5, stored.Rating)
		assert.Equal(t, "Vanilla", stored.Flavor)
	})

	t.Run("Missing IDs are not found", func(t *testing.T) {
		testDB.TruncateAllTables(t)

		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, errs.ErrCupcakeNotFound)

		assert.ErrorIs(t, repo.Update(ctx, &entity.Cupcake{ID: 999, Flavor: "x", Size: "y"}), errs.ErrCupcakeNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, 999), errs.ErrCupcakeNotFound)
	})
}
