// Package catalog adapts the catalog bounded context to the cart's
// ProductCatalog port.
package catalog

import (
	"context"
	"errors"
	"fmt"

	types "github.com/vnstore/go-shop-api-server/internal/domains/cart/application/types"
	cartports "github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"
	catalogports "github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"
)

var _ cartports.ProductCatalog = (*Reader)(nil)

// Reader resolves products for line-item checks and enrichment.
type Reader struct {
	products catalogports.ProductRepository
}

// NewReader wraps a catalog product repository.
func NewReader(products catalogports.ProductRepository) *Reader {
	return &Reader{products: products}
}

// Product fetches one product, translating the catalog's not-found sentinel
// into the cart context's own.
func (r *Reader) Product(ctx context.Context, id int64) (*types.CatalogProduct, error) {
	proj, err := r.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogports.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: id %d", cartports.ErrProductNotFound, id)
		}
		return nil, err
	}
	p := proj.Entity
	return &types.CatalogProduct{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Discount:     p.Discount,
		CurrentPrice: p.CurrentPrice,
		Category:     p.Category,
		Images:       append([]string{}, p.Images...),
	}, nil
}
