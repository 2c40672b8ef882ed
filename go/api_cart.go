package shopserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	carthttpmapper "github.com/vnstore/go-shop-api-server/internal/domains/cart/adapters/http/mapper"
	cartapp "github.com/vnstore/go-shop-api-server/internal/domains/cart/application"
	carttypes "github.com/vnstore/go-shop-api-server/internal/domains/cart/application/types"
	cartports "github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"
)

// CartAPI wires HTTP transport with the cart bounded context service.
type CartAPI struct {
	service cartports.Service
}

// NewCartAPI creates a CartAPI backed by the provided service.
func NewCartAPI(service cartports.Service) CartAPI {
	return CartAPI{service: service}
}

// Post /cart
// Create an empty cart
func (api *CartAPI) CreateCart(c *gin.Context) {
	cart, err := api.service.CreateCart(c.Request.Context())
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromView(cart))
}

// Get /cart/:cartId
// Find cart by ID
func (api *CartAPI) GetCartById(c *gin.Context) {
	id, ok := parseIDParam(c, "cartId")
	if !ok {
		return
	}
	cart, err := api.service.GetCart(c.Request.Context(), carttypes.CartIdentifier{ID: id})
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromView(cart))
}

// Put /cart/:cartId
// Apply one line-item mutation to a cart
func (api *CartAPI) UpdateCart(c *gin.Context) {
	id, ok := parseIDParam(c, "cartId")
	if !ok {
		return
	}
	var payload carthttpmapper.UpdateCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input, err := carthttpmapper.ToUpdateInput(id, payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	cart, err := api.service.UpdateCart(c.Request.Context(), input)
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromView(cart))
}

// Put /cart/clear/:cartId
// Remove every line item from a cart
func (api *CartAPI) ClearCart(c *gin.Context) {
	id, ok := parseIDParam(c, "cartId")
	if !ok {
		return
	}
	cart, err := api.service.ClearCart(c.Request.Context(), carttypes.CartIdentifier{ID: id})
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromView(cart))
}

// Delete /cart/:cartId
// Delete a cart
func (api *CartAPI) DeleteCart(c *gin.Context) {
	id, ok := parseIDParam(c, "cartId")
	if !ok {
		return
	}
	cart, err := api.service.DeleteCart(c.Request.Context(), carttypes.CartIdentifier{ID: id})
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromView(cart))
}

func respondCartServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, cartports.ErrNotFound), errors.Is(err, cartports.ErrProductNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, cartapp.ErrConcurrentUpdate):
		respondError(c, http.StatusConflict, err)
	case errors.Is(err, cartapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
