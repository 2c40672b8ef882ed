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

	"github.com/vnstore/go-shop-api-server/internal/domains/orders/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"
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

func testShipping() domain.ShippingDetail {
	return domain.ShippingDetail{
		Address:  "12 Nguyen Trai",
		Province: "Ha Noi",
		District: "Thanh Xuan",
		Ward:     "Khuong Trung",
		Name:     "Nguyen Van A",
		Phone:    "0912345678",
		Email:    "a@example.com",
	}
}

func newTestOrder(t *testing.T, orderTime time.Time) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(
		5,
		[]domain.SnapshotItem{{ProductID: 1, Quantity: 2, UnitPrice: 900}, {ProductID: 2, Quantity: 1, UnitPrice: 500}},
		testShipping(),
		domain.PaymentCOD,
		"call first",
		orderTime,
	)
	require.NoError(t, err)
	return order
}

func TestOrderRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	order := newTestOrder(t, time.Now().UTC().Truncate(time.Microsecond))
	saved, err := repo.Save(ctx, order)
	require.NoError(t, err)
	require.NotZero(t, saved.Entity.ID)

	loaded, err := repo.GetByID(ctx, saved.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, loaded.Entity.Status)
	assert.Equal(t, "Khuong Trung", loaded.Entity.Shipping.Ward)
	assert.Equal(t, domain.PaymentCOD, loaded.Entity.Payment)
	require.Len(t, loaded.Entity.Items, 2)
	assert.Equal(t, int64(900), loaded.Entity.Items[0].UnitPrice)
	assert.Equal(t, int64(2*900+500), loaded.Entity.Total())
}

func TestOrderRepository_SavePersistsLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestOrder(t, time.Now().UTC()))
	require.NoError(t, err)

	order := saved.Entity
	now := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, order.Advance(domain.StatusPaid, now))
	require.NoError(t, order.Advance(domain.StatusConfirmed, now))

	updated, err := repo.Save(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Entity.Status)
	require.NotNil(t, updated.Entity.ConfirmTime)
	assert.Equal(t, now, updated.Entity.ConfirmTime.UTC())
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	_, err := repo.GetByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestOrderRepository_ListAndCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, newTestOrder(t, time.Now().UTC()))
		require.NoError(t, err)
	}

	window, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, window, 2)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestOrderRepository_CancelStale(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	stale, err := repo.Save(ctx, newTestOrder(t, time.Now().UTC().Add(-48*time.Hour)))
	require.NoError(t, err)
	recent, err := repo.Save(ctx, newTestOrder(t, time.Now().UTC()))
	require.NoError(t, err)

	// A paid order is not pending anymore and survives expiry.
	paidOrder := newTestOrder(t, time.Now().UTC().Add(-48*time.Hour))
	require.NoError(t, paidOrder.Advance(domain.StatusPaid, time.Now().UTC()))
	paid, err := repo.Save(ctx, paidOrder)
	require.NoError(t, err)

	cancelled, err := repo.CancelStale(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancelled)

	staleLoaded, err := repo.GetByID(ctx, stale.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, staleLoaded.Entity.Status)

	recentLoaded, err := repo.GetByID(ctx, recent.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, recentLoaded.Entity.Status)

	paidLoaded, err := repo.GetByID(ctx, paid.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paidLoaded.Entity.Status)
}
