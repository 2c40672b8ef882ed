package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ordersmemory "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/memory"
	types "github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

type stubCarts struct {
	carts map[int64]*types.CartSnapshot
}

func (s *stubCarts) Cart(_ context.Context, id int64) (*types.CartSnapshot, error) {
	if cart, ok := s.carts[id]; ok {
		return cart, nil
	}
	return nil, fmt.Errorf("cart %d: %w", id, ports.ErrCartNotFound)
}

type stubCatalog struct {
	products map[int64]*types.CatalogProduct
}

func (s *stubCatalog) Product(_ context.Context, id int64) (*types.CatalogProduct, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, fmt.Errorf("product %d: %w", id, ports.ErrProductNotFound)
}

func validShipping() domain.ShippingDetail {
	return domain.ShippingDetail{
		Address:  "12 Nguyen Trai",
		Province: "Ha Noi",
		District: "Thanh Xuan",
		Ward:     "Khuong Trung",
		Name:     "Nguyen Van A",
		Phone:    "0912345678",
	}
}

func fixture() (*Service, *stubCarts, *stubCatalog) {
	carts := &stubCarts{carts: map[int64]*types.CartSnapshot{
		5: {ID: 5, Items: []types.CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}},
		6: {ID: 6, Items: nil},
	}}
	catalog := &stubCatalog{products: map[int64]*types.CatalogProduct{
		1: {ID: 1, Name: "Keyboard", Price: 1000, Discount: 10, CurrentPrice: 900},
		2: {ID: 2, Name: "Mouse", Price: 500, CurrentPrice: 500},
	}}
	return NewService(ordersmemory.NewRepository(), carts, catalog), carts, catalog
}

func TestCreateOrder_FreezesUnitPrices(t *testing.T) {
	svc, _, catalog := fixture()
	ctx := context.Background()

	view, err := svc.CreateOrder(ctx, types.CreateOrderInput{
		CartID: 5, Shipping: validShipping(), Payment: "cod", Note: "call first",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, view.Status)
	require.Len(t, view.Items, 2)
	require.Equal(t, int64(900), view.Items[0].UnitPrice)
	require.Equal(t, int64(500), view.Items[1].UnitPrice)
	require.Equal(t, int64(2*900+500), view.Total)

	// A later price change never alters the stored snapshot.
	catalog.products[1].CurrentPrice = 100
	reloaded, err := svc.GetOrder(ctx, types.OrderIdentifier{ID: view.ID})
	require.NoError(t, err)
	require.Equal(t, int64(900), reloaded.Items[0].UnitPrice)
	require.Equal(t, int64(2*900+500), reloaded.Total)
}

func TestCreateOrder_VanishedProductFreezesZero(t *testing.T) {
	svc, _, catalog := fixture()
	delete(catalog.products, 2)

	view, err := svc.CreateOrder(context.Background(), types.CreateOrderInput{
		CartID: 5, Shipping: validShipping(), Payment: "cod",
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), view.Items[1].UnitPrice)
	require.Nil(t, view.Items[1].Product)
	require.Equal(t, int64(2*900), view.Total)
}

func TestCreateOrder_EmptyCartAllowed(t *testing.T) {
	svc, _, _ := fixture()

	view, err := svc.CreateOrder(context.Background(), types.CreateOrderInput{
		CartID: 6, Shipping: validShipping(), Payment: "vnpay",
	})
	require.NoError(t, err)
	require.Empty(t, view.Items)
	require.Zero(t, view.Total)
}

func TestCreateOrder_CartNotFound(t *testing.T) {
	svc, _, _ := fixture()

	_, err := svc.CreateOrder(context.Background(), types.CreateOrderInput{
		CartID: 42, Shipping: validShipping(), Payment: "cod",
	})
	require.ErrorIs(t, err, ports.ErrCartNotFound)
}

func TestCreateOrder_InvalidPayment(t *testing.T) {
	svc, _, _ := fixture()

	_, err := svc.CreateOrder(context.Background(), types.CreateOrderInput{
		CartID: 5, Shipping: validShipping(), Payment: "paypal",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateOrder_IncompleteShipping(t *testing.T) {
	svc, _, _ := fixture()
	shipping := validShipping()
	shipping.District = ""

	_, err := svc.CreateOrder(context.Background(), types.CreateOrderInput{
		CartID: 5, Shipping: shipping, Payment: "cod",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdvanceOrder_StampsLifecycleTimes(t *testing.T) {
	svc, _, _ := fixture()
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, types.CreateOrderInput{
		CartID: 5, Shipping: validShipping(), Payment: "cod",
	})
	require.NoError(t, err)

	view, err := svc.AdvanceOrder(ctx, types.AdvanceOrderInput{OrderID: created.ID, Target: "PAID"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaid, view.Status)
	require.Nil(t, view.ConfirmTime)

	view, err = svc.AdvanceOrder(ctx, types.AdvanceOrderInput{OrderID: created.ID, Target: "CONFIRMED"})
	require.NoError(t, err)
	require.NotNil(t, view.ConfirmTime)

	view, err = svc.AdvanceOrder(ctx, types.AdvanceOrderInput{OrderID: created.ID, Target: "DELIVERING"})
	require.NoError(t, err)
	require.NotNil(t, view.DeliveryTime)

	view, err = svc.AdvanceOrder(ctx, types.AdvanceOrderInput{OrderID: created.ID, Target: "DELIVERED"})
	require.NoError(t, err)
	require.NotNil(t, view.SuccessTime)
}

func TestAdvanceOrder_IllegalTransition(t *testing.T) {
	svc, _, _ := fixture()
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, types.CreateOrderInput{
		CartID: 5, Shipping: validShipping(), Payment: "cod",
	})
	require.NoError(t, err)

	_, err = svc.AdvanceOrder(ctx, types.AdvanceOrderInput{OrderID: created.ID, Target: "DELIVERED"})
	require.ErrorIs(t, err, domain.ErrIllegalTransition)

	// The failed transition must not persist.
	reloaded, err := svc.GetOrder(ctx, types.OrderIdentifier{ID: created.ID})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, reloaded.Status)
}

func TestAdvanceOrder_UnknownStatus(t *testing.T) {
	svc, _, _ := fixture()
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, types.CreateOrderInput{
		CartID: 5, Shipping: validShipping(), Payment: "cod",
	})
	require.NoError(t, err)

	_, err = svc.AdvanceOrder(ctx, types.AdvanceOrderInput{OrderID: created.ID, Target: "SHIPPED"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOrder_NotFound(t *testing.T) {
	svc, _, _ := fixture()
	_, err := svc.GetOrder(context.Background(), types.OrderIdentifier{ID: 99})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListOrders_PaginatesWithTotal(t *testing.T) {
	svc, _, _ := fixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateOrder(ctx, types.CreateOrderInput{
			CartID: 6, Shipping: validShipping(), Payment: "cod",
		})
		require.NoError(t, err)
	}

	request, err := pagination.NewRequest(2, 2)
	require.NoError(t, err)
	page, err := svc.ListOrders(ctx, request)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, int64(3), page.TotalElements)
}

func TestCancelStale_MemoryRepository(t *testing.T) {
	repo := ordersmemory.NewRepository()
	carts := &stubCarts{carts: map[int64]*types.CartSnapshot{6: {ID: 6}}}
	catalog := &stubCatalog{products: map[int64]*types.CatalogProduct{}}

	past := time.Now().UTC().Add(-48 * time.Hour)
	svc := NewService(repo, carts, catalog, WithClock(func() time.Time { return past }))
	ctx := context.Background()

	stale, err := svc.CreateOrder(ctx, types.CreateOrderInput{CartID: 6, Shipping: validShipping(), Payment: "cod"})
	require.NoError(t, err)

	fresh := NewService(repo, carts, catalog)
	recent, err := fresh.CreateOrder(ctx, types.CreateOrderInput{CartID: 6, Shipping: validShipping(), Payment: "cod"})
	require.NoError(t, err)

	cancelled, err := repo.CancelStale(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), cancelled)

	staleView, err := fresh.GetOrder(ctx, types.OrderIdentifier{ID: stale.ID})
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, staleView.Status)

	recentView, err := fresh.GetOrder(ctx, types.OrderIdentifier{ID: recent.ID})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, recentView.Status)
}
