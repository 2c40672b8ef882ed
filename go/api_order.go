package shopserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/http/mapper"
	ordersapp "github.com/vnstore/go-shop-api-server/internal/domains/orders/application"
	orderstypes "github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	ordersdomain "github.com/vnstore/go-shop-api-server/internal/domains/orders/domain"
	ordersports "github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

// OrderAPI wires HTTP transport with the orders bounded context service and workflows.
type OrderAPI struct {
	service   ordersports.Service
	workflows ordersports.WorkflowOrchestrator
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service, workflows ordersports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{service: service, workflows: workflows}
}

// Post /order
// Place a new order from a cart
func (api *OrderAPI) PlaceOrder(c *gin.Context) {
	var payload orderhttpmapper.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := orderhttpmapper.ToCreateInput(payload, c.GetHeader("Idempotency-Key"))
	view, err := api.placeOrder(c.Request.Context(), input)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromView(view))
}

func (api *OrderAPI) placeOrder(ctx context.Context, input orderstypes.CreateOrderInput) (*orderstypes.OrderView, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, input)
	}
	return api.service.CreateOrder(ctx, input)
}

// Get /order/:orderId
// Find order by ID
func (api *OrderAPI) GetOrderById(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	view, err := api.service.GetOrder(c.Request.Context(), orderstypes.OrderIdentifier{ID: id})
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromView(view))
}

// Get /order
// List orders page by page
func (api *OrderAPI) ListOrders(c *gin.Context) {
	request, ok := parsePagination(c)
	if !ok {
		return
	}
	page, err := api.service.ListOrders(c.Request.Context(), request)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	response := pagination.Page[orderhttpmapper.Order]{
		Items:         orderhttpmapper.FromViewList(page.Items),
		TotalElements: page.TotalElements,
	}
	c.JSON(http.StatusOK, response)
}

// Put /order/:orderId/status
// Advance an order along its lifecycle
func (api *OrderAPI) AdvanceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload orderhttpmapper.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	view, err := api.service.AdvanceOrder(c.Request.Context(), orderhttpmapper.ToAdvanceInput(id, payload))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromView(view))
}

func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, ordersports.ErrNotFound), errors.Is(err, ordersports.ErrCartNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, ordersdomain.ErrIllegalTransition):
		respondError(c, http.StatusConflict, err)
	case errors.Is(err, ordersapp.ErrInvalidInput), errors.Is(err, pagination.ErrInvalidPage):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
