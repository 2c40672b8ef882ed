package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	cartmemory "github.com/vnstore/go-shop-api-server/internal/domains/cart/adapters/memory"
	types "github.com/vnstore/go-shop-api-server/internal/domains/cart/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/cart/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

// stubCatalog serves a fixed set of products.
type stubCatalog struct {
	products map[int64]*types.CatalogProduct
}

func (s *stubCatalog) Product(_ context.Context, id int64) (*types.CatalogProduct, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, fmt.Errorf("product %d: %w", id, ports.ErrProductNotFound)
}

func newStubCatalog(ids ...int64) *stubCatalog {
	products := make(map[int64]*types.CatalogProduct, len(ids))
	for _, id := range ids {
		products[id] = &types.CatalogProduct{ID: id, Name: fmt.Sprintf("product-%d", id), Price: 100, CurrentPrice: 100}
	}
	return &stubCatalog{products: products}
}

// conflictingRepo fails every Save with a version conflict.
type conflictingRepo struct {
	ports.Repository
	conflicts int
}

func (r *conflictingRepo) Save(context.Context, *domain.Cart) (*projection.Projection[*domain.Cart], error) {
	r.conflicts++
	return nil, ports.ErrVersionConflict
}

func TestCreateCart_Empty(t *testing.T) {
	svc := NewService(cartmemory.NewRepository(), newStubCatalog())

	view, err := svc.CreateCart(context.Background())
	require.NoError(t, err)
	require.NotZero(t, view.ID)
	require.Empty(t, view.Items)
}

func TestUpdateCart_InsertAndIncrease(t *testing.T) {
	svc := NewService(cartmemory.NewRepository(), newStubCatalog(7))
	ctx := context.Background()

	created, err := svc.CreateCart(ctx)
	require.NoError(t, err)

	view, err := svc.UpdateCart(ctx, types.UpdateCartInput{
		CartID: created.ID, ProductID: 7, Quantity: 2, Action: domain.ActionIncrease,
	})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, int64(2), view.Items[0].Quantity)
	require.NotNil(t, view.Items[0].Product)

	view, err = svc.UpdateCart(ctx, types.UpdateCartInput{
		CartID: created.ID, ProductID: 7, Quantity: 3, Action: domain.ActionIncrease,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), view.Items[0].Quantity)
}

func TestUpdateCart_UnknownProduct(t *testing.T) {
	svc := NewService(cartmemory.NewRepository(), newStubCatalog())
	ctx := context.Background()

	created, err := svc.CreateCart(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateCart(ctx, types.UpdateCartInput{
		CartID: created.ID, ProductID: 99, Quantity: 1, Action: domain.ActionIncrease,
	})
	require.ErrorIs(t, err, ports.ErrProductNotFound)
}

func TestUpdateCart_UnknownAction(t *testing.T) {
	svc := NewService(cartmemory.NewRepository(), newStubCatalog(7))
	ctx := context.Background()

	created, err := svc.CreateCart(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateCart(ctx, types.UpdateCartInput{
		CartID: created.ID, ProductID: 7, Quantity: 1, Action: domain.UpdateAction("ADD"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateCart_CartNotFound(t *testing.T) {
	svc := NewService(cartmemory.NewRepository(), newStubCatalog(7))

	_, err := svc.UpdateCart(context.Background(), types.UpdateCartInput{
		CartID: 42, ProductID: 7, Quantity: 1, Action: domain.ActionIncrease,
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUpdateCart_ExhaustedRetriesSurfaceConflict(t *testing.T) {
	memory := cartmemory.NewRepository()
	ctx := context.Background()
	created, err := memory.Create(ctx)
	require.NoError(t, err)

	repo := &conflictingRepo{Repository: memory}
	svc := NewService(repo, newStubCatalog(7))

	_, err = svc.UpdateCart(ctx, types.UpdateCartInput{
		CartID: created.Entity.ID, ProductID: 7, Quantity: 1, Action: domain.ActionIncrease,
	})
	require.ErrorIs(t, err, ErrConcurrentUpdate)
	require.Equal(t, 3, repo.conflicts)
}

func TestGetCart_EnrichmentSurvivesVanishedProduct(t *testing.T) {
	catalog := newStubCatalog(7)
	svc := NewService(cartmemory.NewRepository(), catalog)
	ctx := context.Background()

	created, err := svc.CreateCart(ctx)
	require.NoError(t, err)
	_, err = svc.UpdateCart(ctx, types.UpdateCartInput{
		CartID: created.ID, ProductID: 7, Quantity: 2, Action: domain.ActionIncrease,
	})
	require.NoError(t, err)

	delete(catalog.products, 7)

	view, err := svc.GetCart(ctx, types.CartIdentifier{ID: created.ID})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Nil(t, view.Items[0].Product)
	require.Equal(t, int64(2), view.Items[0].Quantity)
}

func TestClearCart(t *testing.T) {
	svc := NewService(cartmemory.NewRepository(), newStubCatalog(7, 8))
	ctx := context.Background()

	created, err := svc.CreateCart(ctx)
	require.NoError(t, err)
	for _, id := range []int64{7, 8} {
		_, err = svc.UpdateCart(ctx, types.UpdateCartInput{
			CartID: created.ID, ProductID: id, Quantity: 1, Action: domain.ActionIncrease,
		})
		require.NoError(t, err)
	}

	view, err := svc.ClearCart(ctx, types.CartIdentifier{ID: created.ID})
	require.NoError(t, err)
	require.Empty(t, view.Items)
}

func TestDeleteCart_ReturnsSnapshotThenGone(t *testing.T) {
	svc := NewService(cartmemory.NewRepository(), newStubCatalog(7))
	ctx := context.Background()

	created, err := svc.CreateCart(ctx)
	require.NoError(t, err)
	_, err = svc.UpdateCart(ctx, types.UpdateCartInput{
		CartID: created.ID, ProductID: 7, Quantity: 1, Action: domain.ActionIncrease,
	})
	require.NoError(t, err)

	snapshot, err := svc.DeleteCart(ctx, types.CartIdentifier{ID: created.ID})
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)

	_, err = svc.GetCart(ctx, types.CartIdentifier{ID: created.ID})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestGetCart_InvalidID(t *testing.T) {
	svc := NewService(cartmemory.NewRepository(), newStubCatalog())

	_, err := svc.GetCart(context.Background(), types.CartIdentifier{ID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}
