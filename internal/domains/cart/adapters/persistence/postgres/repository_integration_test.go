//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vnstore/go-shop-api-server/internal/domains/cart/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"
	"github.com/vnstore/go-shop-api-server/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("shop_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestCartRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx)
	require.NoError(t, err)
	require.NotZero(t, created.Entity.ID)
	assert.Empty(t, created.Entity.Items)
	assert.Equal(t, int64(1), created.Entity.Version)

	loaded, err := repo.GetByID(ctx, created.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Entity.ID, loaded.Entity.ID)
}

func TestCartRepository_SaveBumpsVersion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx)
	require.NoError(t, err)

	cart := created.Entity
	require.NoError(t, cart.Apply(domain.ActionIncrease, 7, 3))
	saved, err := repo.Save(ctx, cart)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.Entity.Version)
	require.Len(t, saved.Entity.Items, 1)
	assert.Equal(t, int64(3), saved.Entity.Items[0].Quantity)
}

func TestCartRepository_StaleVersionConflicts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx)
	require.NoError(t, err)

	// Two readers load version 1; the second write must lose.
	first := created.Entity
	stale, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)

	require.NoError(t, first.Apply(domain.ActionIncrease, 7, 1))
	_, err = repo.Save(ctx, first)
	require.NoError(t, err)

	staleCart := stale.Entity
	require.NoError(t, staleCart.Apply(domain.ActionIncrease, 8, 1))
	_, err = repo.Save(ctx, staleCart)
	assert.ErrorIs(t, err, ports.ErrVersionConflict)

	// The winning write is intact.
	loaded, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Entity.Items, 1)
	assert.Equal(t, int64(7), loaded.Entity.Items[0].ProductID)
}

func TestCartRepository_DeleteReturnsSnapshot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx)
	require.NoError(t, err)
	cart := created.Entity
	require.NoError(t, cart.Apply(domain.ActionIncrease, 7, 2))
	_, err = repo.Save(ctx, cart)
	require.NoError(t, err)

	snapshot, err := repo.Delete(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, snapshot.Entity.Items, 1)

	_, err = repo.GetByID(ctx, cart.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
