package ports

import (
	"context"

	"github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

// Service is the application boundary for the orders bounded context.
type Service interface {
	CreateOrder(ctx context.Context, input types.CreateOrderInput) (*types.OrderView, error)
	GetOrder(ctx context.Context, identifier types.OrderIdentifier) (*types.OrderView, error)
	ListOrders(ctx context.Context, request pagination.Request) (*pagination.Page[*types.OrderView], error)
	AdvanceOrder(ctx context.Context, input types.AdvanceOrderInput) (*types.OrderView, error)
}
