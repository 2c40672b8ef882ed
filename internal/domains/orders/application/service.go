package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

var _ ports.Service = (*Service)(nil)

// Service implements the order lifecycle on top of the repository and the
// read-only views into the cart and catalog contexts.
type Service struct {
	orders  ports.Repository
	carts   ports.CartReader
	catalog ports.ProductCatalog
	now     func() time.Time
}

// Option customizes service construction.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the orders application service.
func NewService(orders ports.Repository, carts ports.CartReader, catalog ports.ProductCatalog, opts ...Option) *Service {
	s := &Service{orders: orders, carts: carts, catalog: catalog, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder snapshots the referenced cart into a pending order, freezing
// each line's unit price at the product's effective price right now.
func (s *Service) CreateOrder(ctx context.Context, input types.CreateOrderInput) (*types.OrderView, error) {
	if input.CartID <= 0 {
		return nil, fmt.Errorf("%w: cart id must be positive", ErrInvalidInput)
	}
	payment, err := domain.ParsePaymentMethod(input.Payment)
	if err != nil {
		return nil, mapError(err)
	}
	cart, err := s.carts.Cart(ctx, input.CartID)
	if err != nil {
		if errors.Is(err, ports.ErrCartNotFound) {
			return nil, fmt.Errorf("cart %d: %w", input.CartID, ports.ErrCartNotFound)
		}
		return nil, fmt.Errorf("load cart %d: %w", input.CartID, err)
	}

	items := make([]domain.SnapshotItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		item := domain.SnapshotItem{ProductID: line.ProductID, Quantity: line.Quantity}
		// A product removed from the catalog between carting and checkout is
		// frozen with a zero unit price rather than blocking the order.
		if product, err := s.catalog.Product(ctx, line.ProductID); err == nil && product != nil {
			item.UnitPrice = product.CurrentPrice
		} else if err != nil && !errors.Is(err, ports.ErrProductNotFound) {
			return nil, fmt.Errorf("price product %d: %w", line.ProductID, err)
		}
		items = append(items, item)
	}

	order, err := domain.NewOrder(cart.ID, items, input.Shipping, payment, input.Note, s.now().UTC())
	if err != nil {
		return nil, mapError(err)
	}
	stored, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return s.view(ctx, stored), nil
}

// GetOrder loads one order and enriches its lines with current product data.
func (s *Service) GetOrder(ctx context.Context, identifier types.OrderIdentifier) (*types.OrderView, error) {
	if identifier.ID <= 0 {
		return nil, fmt.Errorf("%w: order id must be positive", ErrInvalidInput)
	}
	stored, err := s.orders.GetByID(ctx, identifier.ID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, stored), nil
}

// ListOrders returns one page ordered by id plus the unfiltered total.
func (s *Service) ListOrders(ctx context.Context, request pagination.Request) (*pagination.Page[*types.OrderView], error) {
	stored, err := s.orders.List(ctx, request.Offset(), request.Limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	total, err := s.orders.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	views := make([]*types.OrderView, 0, len(stored))
	for _, projection := range stored {
		views = append(views, s.view(ctx, projection))
	}
	return &pagination.Page[*types.OrderView]{Items: views, TotalElements: total}, nil
}

// AdvanceOrder moves an order along its lifecycle when the step is legal.
func (s *Service) AdvanceOrder(ctx context.Context, input types.AdvanceOrderInput) (*types.OrderView, error) {
	if input.OrderID <= 0 {
		return nil, fmt.Errorf("%w: order id must be positive", ErrInvalidInput)
	}
	target, err := domain.ParseStatus(input.Target)
	if err != nil {
		return nil, mapError(err)
	}
	stored, err := s.orders.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	order := stored.Entity
	if err := order.Advance(target, s.now().UTC()); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("save order %d: %w", input.OrderID, err)
	}
	return s.view(ctx, saved), nil
}

// view builds the read model, attaching current product data where lookups
// succeed. Enrichment is best effort and never fails the read.
func (s *Service) view(ctx context.Context, stored *types.OrderProjection) *types.OrderView {
	order := stored.Entity
	items := make([]types.EnrichedItem, 0, len(order.Items))
	for _, line := range order.Items {
		enriched := types.EnrichedItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
		if s.catalog != nil {
			if product, err := s.catalog.Product(ctx, line.ProductID); err == nil {
				enriched.Product = product
			}
		}
		items = append(items, enriched)
	}
	return &types.OrderView{
		ID:           order.ID,
		CartID:       order.CartID,
		Items:        items,
		Status:       order.Status,
		Shipping:     order.Shipping,
		Payment:      order.Payment,
		Note:         order.Note,
		Total:        order.Total(),
		OrderTime:    order.OrderTime,
		ConfirmTime:  order.ConfirmTime,
		DeliveryTime: order.DeliveryTime,
		SuccessTime:  order.SuccessTime,
		Metadata:     stored.Metadata,
	}
}
