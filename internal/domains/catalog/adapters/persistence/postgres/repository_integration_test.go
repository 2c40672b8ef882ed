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

	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"
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

func TestProductRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewProductRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct(0, "Keyboard", 150000, 20, "peripherals")
	require.NoError(t, err)
	product.Describe("mechanical, hot swap")
	product.ReplaceImages([]string{"https://img.example.com/kb.png"})

	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)
	require.NotZero(t, saved.Entity.ID)
	assert.Equal(t, int64(120000), saved.Entity.CurrentPrice)
	assert.False(t, saved.Metadata.CreatedAt.IsZero())

	loaded, err := repo.GetByID(ctx, saved.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", loaded.Entity.Name)
	assert.Equal(t, []string{"https://img.example.com/kb.png"}, loaded.Entity.Images)
}

func TestProductRepository_SaveUpsertsExisting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewProductRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct(0, "Keyboard", 150000, 0, "peripherals")
	require.NoError(t, err)
	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)

	require.NoError(t, saved.Entity.ApplyDiscount(50))
	updated, err := repo.Save(ctx, saved.Entity)
	require.NoError(t, err)
	assert.Equal(t, saved.Entity.ID, updated.Entity.ID)
	assert.Equal(t, int64(75000), updated.Entity.CurrentPrice)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestProductRepository_DeleteReturnsSnapshot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewProductRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct(0, "Mouse", 50000, 0, "peripherals")
	require.NoError(t, err)
	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)

	snapshot, err := repo.Delete(ctx, saved.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mouse", snapshot.Entity.Name)

	_, err = repo.GetByID(ctx, saved.Entity.ID)
	assert.ErrorIs(t, err, ports.ErrProductNotFound)
}

func TestProductRepository_ListWindow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewProductRepository(db)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		product, err := domain.NewProduct(0, name, 100, 0, "misc")
		require.NoError(t, err)
		_, err = repo.Save(ctx, product)
		require.NoError(t, err)
	}

	window, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "B", window[0].Entity.Name)
	assert.Equal(t, "C", window[1].Entity.Name)
}

func TestCategoryRepository_GetByName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category, err := domain.NewCategory(0, "peripherals", "input devices")
	require.NoError(t, err)
	saved, err := repo.Save(ctx, category)
	require.NoError(t, err)

	byName, err := repo.GetByName(ctx, "peripherals")
	require.NoError(t, err)
	assert.Equal(t, saved.Entity.ID, byName.Entity.ID)

	_, err = repo.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrCategoryNotFound)
}
