package shopserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/vnstore/go-shop-api-server/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/vnstore/go-shop-api-server/internal/domains/catalog/application"
	catalogtypes "github.com/vnstore/go-shop-api-server/internal/domains/catalog/application/types"
	catalogports "github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

// ProductAPI wires HTTP transport with the catalog bounded context product use cases.
type ProductAPI struct {
	service catalogports.Service
}

// NewProductAPI creates a ProductAPI backed by the provided service.
func NewProductAPI(service catalogports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// Post /product
// Add a new product to the catalog
func (api *ProductAPI) AddProduct(c *gin.Context) {
	var payload cataloghttpmapper.MutationProduct
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := catalogtypes.CreateProductInput{ProductMutationInput: cataloghttpmapper.ToProductMutationInput(0, payload)}
	saved, err := api.service.CreateProduct(c.Request.Context(), input)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromProductProjection(saved))
}

// Put /product/:productId
// Update an existing product
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload cataloghttpmapper.MutationProduct
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := catalogtypes.UpdateProductInput{ProductMutationInput: cataloghttpmapper.ToProductMutationInput(id, payload)}
	updated, err := api.service.UpdateProduct(c.Request.Context(), input)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromProductProjection(updated))
}

// Get /product/:productId
// Find product by ID
func (api *ProductAPI) GetProductById(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	product, err := api.service.GetProduct(c.Request.Context(), catalogtypes.ProductIdentifier{ID: id})
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromProductProjection(product))
}

// Get /product
// List products page by page
func (api *ProductAPI) ListProducts(c *gin.Context) {
	request, ok := parsePagination(c)
	if !ok {
		return
	}
	page, err := api.service.ListProducts(c.Request.Context(), request)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	response := pagination.Page[cataloghttpmapper.Product]{
		Items:         cataloghttpmapper.FromProductProjectionList(page.Items),
		TotalElements: page.TotalElements,
	}
	c.JSON(http.StatusOK, response)
}

// Delete /product/:productId
// Delete a product
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	deleted, err := api.service.DeleteProduct(c.Request.Context(), catalogtypes.ProductIdentifier{ID: id})
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromProductProjection(deleted))
}

func respondCatalogServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, catalogports.ErrProductNotFound), errors.Is(err, catalogports.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, catalogapp.ErrCategoryExists):
		respondError(c, http.StatusConflict, err)
	case errors.Is(err, catalogapp.ErrInvalidInput), errors.Is(err, pagination.ErrInvalidPage):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
