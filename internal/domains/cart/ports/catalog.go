package ports

import (
	"context"
	"errors"

	types "github.com/vnstore/go-shop-api-server/internal/domains/cart/application/types"
)

// ErrProductNotFound signals a referenced product does not exist in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductCatalog is the read-only collaborator resolving products referenced
// by line items. Implementations surface ErrProductNotFound for missing rows.
type ProductCatalog interface {
	Product(ctx context.Context, id int64) (*types.CatalogProduct, error)
}
