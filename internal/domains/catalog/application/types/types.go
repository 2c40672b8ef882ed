// Package types defines the catalog use case inputs and projections.
package types

import (
	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/domain"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

// ProductProjection transports a product aggregate with persistence metadata.
type ProductProjection = projection.Projection[*domain.Product]

// CategoryProjection transports a category aggregate with persistence metadata.
type CategoryProjection = projection.Projection[*domain.Category]

// ProductMutationInput captures inbound product payloads while preserving
// field presence. A nil field means "keep the stored value" on update; in
// particular an omitted price or discount is never treated as zero when the
// effective price is recomputed.
type ProductMutationInput struct {
	ID          int64
	Name        *string
	Description *string
	Price       *int64
	Discount    *int
	Category    *string
	Images      *[]string
}

// CreateProductInput creates a new product.
type CreateProductInput struct {
	ProductMutationInput
}

// UpdateProductInput partially updates an existing product.
type UpdateProductInput struct {
	ProductMutationInput
}

// ProductIdentifier references a product by id.
type ProductIdentifier struct {
	ID int64
}

// CategoryMutationInput captures inbound category payloads.
type CategoryMutationInput struct {
	ID          int64
	Name        *string
	Description *string
}

// CreateCategoryInput creates a new category.
type CreateCategoryInput struct {
	CategoryMutationInput
}

// UpdateCategoryInput partially updates an existing category.
type UpdateCategoryInput struct {
	CategoryMutationInput
}

// CategoryIdentifier references a category by id.
type CategoryIdentifier struct {
	ID int64
}
