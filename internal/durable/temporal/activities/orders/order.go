package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	orderstypes "github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	ordersports "github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"
)

// PlaceOrderActivityName snapshots a cart into a pending order.
const PlaceOrderActivityName = "orders.activities.PlaceOrder"

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder freezes the cart into an order and returns its read model.
func (a *Activities) PlaceOrder(ctx context.Context, input orderstypes.CreateOrderInput) (*orderstypes.OrderView, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order placement activity not initialized", "cartId", input.CartID)
		return nil, errors.New("order placement activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "cartId", input.CartID)
	view, err := a.service.CreateOrder(ctx, input)
	if err != nil {
		logger.Error("PlaceOrder activity failed", "cartId", input.CartID, "error", err)
		return nil, err
	}
	logger.Info("PlaceOrder activity completed", "cartId", input.CartID, "orderId", view.ID)
	return view, nil
}
