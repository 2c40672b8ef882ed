package shopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/vnstore/go-shop-api-server/internal/domains/catalog/adapters/http/mapper"
	catalogtypes "github.com/vnstore/go-shop-api-server/internal/domains/catalog/application/types"
	catalogports "github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

// CategoryAPI wires HTTP transport with the catalog bounded context category use cases.
type CategoryAPI struct {
	service catalogports.Service
}

// NewCategoryAPI creates a CategoryAPI backed by the provided service.
func NewCategoryAPI(service catalogports.Service) CategoryAPI {
	return CategoryAPI{service: service}
}

// Post /category
// Add a new category
func (api *CategoryAPI) AddCategory(c *gin.Context) {
	var payload cataloghttpmapper.MutationCategory
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := catalogtypes.CreateCategoryInput{CategoryMutationInput: cataloghttpmapper.ToCategoryMutationInput(0, payload)}
	saved, err := api.service.CreateCategory(c.Request.Context(), input)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromCategoryProjection(saved))
}

// Put /category/:categoryId
// Update an existing category
func (api *CategoryAPI) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}
	var payload cataloghttpmapper.MutationCategory
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := catalogtypes.UpdateCategoryInput{CategoryMutationInput: cataloghttpmapper.ToCategoryMutationInput(id, payload)}
	updated, err := api.service.UpdateCategory(c.Request.Context(), input)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromCategoryProjection(updated))
}

// Get /category/:categoryId
// Find category by ID
func (api *CategoryAPI) GetCategoryById(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}
	category, err := api.service.GetCategory(c.Request.Context(), catalogtypes.CategoryIdentifier{ID: id})
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromCategoryProjection(category))
}

// Get /category
// List categories page by page
func (api *CategoryAPI) ListCategories(c *gin.Context) {
	request, ok := parsePagination(c)
	if !ok {
		return
	}
	page, err := api.service.ListCategories(c.Request.Context(), request)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	response := pagination.Page[cataloghttpmapper.Category]{
		Items:         cataloghttpmapper.FromCategoryProjectionList(page.Items),
		TotalElements: page.TotalElements,
	}
	c.JSON(http.StatusOK, response)
}

// Delete /category/:categoryId
// Delete a category
func (api *CategoryAPI) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}
	deleted, err := api.service.DeleteCategory(c.Request.Context(), catalogtypes.CategoryIdentifier{ID: id})
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromCategoryProjection(deleted))
}
