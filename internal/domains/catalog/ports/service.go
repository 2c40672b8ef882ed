package ports

import (
	"context"

	types "github.com/vnstore/go-shop-api-server/internal/domains/catalog/application/types"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

// Service exposes the catalog use cases to adapters.
type Service interface {
	CreateProduct(ctx context.Context, input types.CreateProductInput) (*types.ProductProjection, error)
	UpdateProduct(ctx context.Context, input types.UpdateProductInput) (*types.ProductProjection, error)
	GetProduct(ctx context.Context, input types.ProductIdentifier) (*types.ProductProjection, error)
	ListProducts(ctx context.Context, page pagination.Request) (*pagination.Page[*types.ProductProjection], error)
	DeleteProduct(ctx context.Context, input types.ProductIdentifier) (*types.ProductProjection, error)

	CreateCategory(ctx context.Context, input types.CreateCategoryInput) (*types.CategoryProjection, error)
	UpdateCategory(ctx context.Context, input types.UpdateCategoryInput) (*types.CategoryProjection, error)
	GetCategory(ctx context.Context, input types.CategoryIdentifier) (*types.CategoryProjection, error)
	ListCategories(ctx context.Context, page pagination.Request) (*pagination.Page[*types.CategoryProjection], error)
	DeleteCategory(ctx context.Context, input types.CategoryIdentifier) (*types.CategoryProjection, error)
}
