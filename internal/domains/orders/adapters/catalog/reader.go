package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogports "github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"
)

var _ ports.ProductCatalog = (*Reader)(nil)

// Reader adapts the catalog product repository into the orders-facing view
// used for price freezing and enrichment.
type Reader struct {
	products catalogports.ProductRepository
}

// NewReader wires the product repository behind the orders-facing port.
func NewReader(products catalogports.ProductRepository) *Reader {
	return &Reader{products: products}
}

// Product loads one product and projects it into the orders-side view.
func (r *Reader) Product(ctx context.Context, id int64) (*types.CatalogProduct, error) {
	if r == nil || r.products == nil {
		return nil, errors.New("catalog reader not configured")
	}
	stored, err := r.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogports.ErrProductNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ports.ErrProductNotFound)
		}
		return nil, err
	}
	product := stored.Entity
	return &types.CatalogProduct{
		ID:           product.ID,
		Name:         product.Name,
		Price:        product.Price,
		Discount:     product.Discount,
		CurrentPrice: product.CurrentPrice,
		Category:     product.Category,
		Images:       append([]string{}, product.Images...),
	}, nil
}
