package application

import (
	"context"
	"errors"
	"fmt"

	types "github.com/vnstore/go-shop-api-server/internal/domains/catalog/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

// Service orchestrates the catalog bounded context use cases: product and
// category mutation with referential and uniqueness checks, and the derived
// effective price recomputation.
type Service struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
}

// NewService wires the catalog service with its repositories.
func NewService(products ports.ProductRepository, categories ports.CategoryRepository) *Service {
	return &Service{products: products, categories: categories}
}

// CreateProduct persists a new product after checking the referenced category.
func (s *Service) CreateProduct(ctx context.Context, input types.CreateProductInput) (*types.ProductProjection, error) {
	if input.Name == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrEmptyProductName)
	}
	category := ""
	if input.Category != nil {
		category = *input.Category
	}
	if err := s.ensureCategoryExists(ctx, category); err != nil {
		return nil, err
	}
	var price int64
	if input.Price != nil {
		price = *input.Price
	}
	discount := 0
	if input.Discount != nil {
		discount = *input.Discount
	}
	product, err := domain.NewProduct(input.ID, *input.Name, price, discount, category)
	if err != nil {
		return nil, mapError(err)
	}
	if input.Description != nil {
		product.Describe(*input.Description)
	}
	if input.Images != nil {
		product.ReplaceImages(*input.Images)
	}
	saved, err := s.products.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdateProduct applies a partial mutation. Omitted price or discount fields
// keep their stored values when the effective price is recomputed.
func (s *Service) UpdateProduct(ctx context.Context, input types.UpdateProductInput) (*types.ProductProjection, error) {
	if input.ID <= 0 {
		return nil, fmt.Errorf("%w: product id must be a positive integer", ErrInvalidInput)
	}
	proj, err := s.products.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	product := proj.Entity
	if input.Name != nil {
		if err := product.Rename(*input.Name); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Description != nil {
		product.Describe(*input.Description)
	}
	if input.Category != nil {
		if err := s.ensureCategoryExists(ctx, *input.Category); err != nil {
			return nil, err
		}
		product.AssignCategory(*input.Category)
	}
	if input.Images != nil {
		product.ReplaceImages(*input.Images)
	}
	if input.Price != nil || input.Discount != nil {
		price := product.Price
		if input.Price != nil {
			price = *input.Price
		}
		discount := product.Discount
		if input.Discount != nil {
			discount = *input.Discount
		}
		if err := product.SetPricing(price, discount); err != nil {
			return nil, mapError(err)
		}
	}
	saved, err := s.products.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetProduct loads a single product.
func (s *Service) GetProduct(ctx context.Context, input types.ProductIdentifier) (*types.ProductProjection, error) {
	if input.ID <= 0 {
		return nil, fmt.Errorf("%w: product id must be a positive integer", ErrInvalidInput)
	}
	proj, err := s.products.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return proj, nil
}

// ListProducts returns one page of products plus the total row count.
func (s *Service) ListProducts(ctx context.Context, page pagination.Request) (*pagination.Page[*types.ProductProjection], error) {
	items, err := s.products.List(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, mapError(err)
	}
	total, err := s.products.Count(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &pagination.Page[*types.ProductProjection]{Items: items, TotalElements: total}, nil
}

// DeleteProduct removes a product and returns the pre-deletion snapshot.
func (s *Service) DeleteProduct(ctx context.Context, input types.ProductIdentifier) (*types.ProductProjection, error) {
	if input.ID <= 0 {
		return nil, fmt.Errorf("%w: product id must be a positive integer", ErrInvalidInput)
	}
	deleted, err := s.products.Delete(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return deleted, nil
}

// CreateCategory persists a new category after the name uniqueness check.
func (s *Service) CreateCategory(ctx context.Context, input types.CreateCategoryInput) (*types.CategoryProjection, error) {
	if input.Name == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrEmptyCategoryName)
	}
	if err := s.ensureNameAvailable(ctx, *input.Name, 0); err != nil {
		return nil, err
	}
	description := ""
	if input.Description != nil {
		description = *input.Description
	}
	category, err := domain.NewCategory(input.ID, *input.Name, description)
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.categories.Save(ctx, category)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdateCategory applies a partial mutation. Renaming a category to its own
// current name is not a conflict.
func (s *Service) UpdateCategory(ctx context.Context, input types.UpdateCategoryInput) (*types.CategoryProjection, error) {
	if input.ID <= 0 {
		return nil, fmt.Errorf("%w: category id must be a positive integer", ErrInvalidInput)
	}
	proj, err := s.categories.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	category := proj.Entity
	if input.Name != nil {
		if err := s.ensureNameAvailable(ctx, *input.Name, category.ID); err != nil {
			return nil, err
		}
		if err := category.Rename(*input.Name); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Description != nil {
		category.Describe(*input.Description)
	}
	saved, err := s.categories.Save(ctx, category)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetCategory loads a single category.
func (s *Service) GetCategory(ctx context.Context, input types.CategoryIdentifier) (*types.CategoryProjection, error) {
	if input.ID <= 0 {
		return nil, fmt.Errorf("%w: category id must be a positive integer", ErrInvalidInput)
	}
	proj, err := s.categories.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return proj, nil
}

// ListCategories returns one page of categories plus the total row count.
func (s *Service) ListCategories(ctx context.Context, page pagination.Request) (*pagination.Page[*types.CategoryProjection], error) {
	items, err := s.categories.List(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, mapError(err)
	}
	total, err := s.categories.Count(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &pagination.Page[*types.CategoryProjection]{Items: items, TotalElements: total}, nil
}

// DeleteCategory removes a category and returns the pre-deletion snapshot.
func (s *Service) DeleteCategory(ctx context.Context, input types.CategoryIdentifier) (*types.CategoryProjection, error) {
	if input.ID <= 0 {
		return nil, fmt.Errorf("%w: category id must be a positive integer", ErrInvalidInput)
	}
	deleted, err := s.categories.Delete(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return deleted, nil
}

func (s *Service) ensureCategoryExists(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrEmptyCategoryName)
	}
	if _, err := s.categories.GetByName(ctx, name); err != nil {
		return mapError(err)
	}
	return nil
}

// ensureNameAvailable enforces name uniqueness excluding the record itself.
func (s *Service) ensureNameAvailable(ctx context.Context, name string, selfID int64) error {
	existing, err := s.categories.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, ports.ErrCategoryNotFound) {
			return nil
		}
		return mapError(err)
	}
	if existing.Entity.ID != selfID {
		return fmt.Errorf("%w: %q", ErrCategoryExists, name)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
