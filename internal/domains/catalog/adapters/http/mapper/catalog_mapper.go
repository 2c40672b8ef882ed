// Package mapper translates between catalog transport payloads and use case types.
package mapper

import (
	"time"

	types "github.com/vnstore/go-shop-api-server/internal/domains/catalog/application/types"
)

// Product is the HTTP representation of a catalog product.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        int64     `json:"price"`
	Discount     int       `json:"discount"`
	CurrentPrice int64     `json:"currentPrice"`
	Category     string    `json:"category,omitempty"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// MutationProduct captures inbound product payloads preserving field presence.
type MutationProduct struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *int64    `json:"price,omitempty"`
	Discount    *int      `json:"discount,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Images      *[]string `json:"images,omitempty"`
}

// Category is the HTTP representation of a catalog category.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// MutationCategory captures inbound category payloads preserving field presence.
type MutationCategory struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ToProductMutationInput maps a transport payload into the use case input.
func ToProductMutationInput(id int64, payload MutationProduct) types.ProductMutationInput {
	return types.ProductMutationInput{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Discount:    payload.Discount,
		Category:    payload.Category,
		Images:      payload.Images,
	}
}

// ToCategoryMutationInput maps a transport payload into the use case input.
func ToCategoryMutationInput(id int64, payload MutationCategory) types.CategoryMutationInput {
	return types.CategoryMutationInput{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
	}
}

// FromProductProjection maps a projection into the HTTP representation.
func FromProductProjection(proj *types.ProductProjection) Product {
	if proj == nil || proj.Entity == nil {
		return Product{}
	}
	p := proj.Entity
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Discount:     p.Discount,
		CurrentPrice: p.CurrentPrice,
		Category:     p.Category,
		Images:       images,
		CreatedAt:    proj.Metadata.CreatedAt,
		UpdatedAt:    proj.Metadata.UpdatedAt,
	}
}

// FromProductProjectionList maps a projection slice into HTTP representations.
func FromProductProjectionList(projs []*types.ProductProjection) []Product {
	result := make([]Product, 0, len(projs))
	for _, proj := range projs {
		result = append(result, FromProductProjection(proj))
	}
	return result
}

// FromCategoryProjection maps a projection into the HTTP representation.
func FromCategoryProjection(proj *types.CategoryProjection) Category {
	if proj == nil || proj.Entity == nil {
		return Category{}
	}
	c := proj.Entity
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   proj.Metadata.CreatedAt,
		UpdatedAt:   proj.Metadata.UpdatedAt,
	}
}

// FromCategoryProjectionList maps a projection slice into HTTP representations.
func FromCategoryProjectionList(projs []*types.CategoryProjection) []Category {
	result := make([]Category, 0, len(projs))
	for _, proj := range projs {
		result = append(result, FromCategoryProjection(proj))
	}
	return result
}
