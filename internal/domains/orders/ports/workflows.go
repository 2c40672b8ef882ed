package ports

import (
	"context"

	orderstypes "github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
)

// WorkflowOrchestrator exposes durable workflow operations required by the orders bounded context.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, input orderstypes.CreateOrderInput) (*orderstypes.OrderView, error)
}
