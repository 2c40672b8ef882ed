package ports

import (
	"context"
	"errors"

	"github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
)

// CartReader exposes the cart lookup the orders context needs at placement
// time.
type CartReader interface {
	Cart(ctx context.Context, id int64) (*types.CartSnapshot, error)
}

// ProductCatalog exposes product lookups for price freezing and read-time
// enrichment.
type ProductCatalog interface {
	Product(ctx context.Context, id int64) (*types.CatalogProduct, error)
}
