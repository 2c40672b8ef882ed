package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderstypes "github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	orderactivities "github.com/vnstore/go-shop-api-server/internal/durable/temporal/activities/orders"
)

// RunOrderPlacementSequence executes the ordered set of activities needed to
// place an order from a cart.
func RunOrderPlacementSequence(ctx workflow.Context, input orderstypes.CreateOrderInput) (*orderstypes.OrderView, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order placement sequence started", "cartId", input.CartID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var view orderstypes.OrderView
	err := workflow.ExecuteActivity(ctx, orderactivities.PlaceOrderActivityName, input).Get(ctx, &view)
	if err != nil {
		logger.Error("order placement sequence failed", "cartId", input.CartID, "error", err)
		return nil, err
	}
	logger.Info("order placement sequence completed", "cartId", input.CartID, "orderId", view.ID)
	return &view, nil
}
