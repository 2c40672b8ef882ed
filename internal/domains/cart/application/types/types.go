// Package types defines the cart use case inputs and views.
package types

import (
	"github.com/vnstore/go-shop-api-server/internal/domains/cart/domain"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

// CartIdentifier references a cart by id.
type CartIdentifier struct {
	ID int64
}

// UpdateCartInput is the validated mutation payload for one line item.
type UpdateCartInput struct {
	CartID    int64
	ProductID int64
	Quantity  int64
	Action    domain.UpdateAction
}

// CatalogProduct is the slice of the product record the cart context needs
// for line-item enrichment.
type CatalogProduct struct {
	ID           int64
	Name         string
	Description  string
	Price        int64
	Discount     int
	CurrentPrice int64
	Category     string
	Images       []string
}

// EnrichedLineItem is a line item with the current product record attached
// for display. Product is nil when the referenced product no longer exists;
// the item itself is never dropped.
type EnrichedLineItem struct {
	ProductID int64
	Quantity  int64
	Product   *CatalogProduct
}

// CartView is the enriched read model returned by every cart operation.
type CartView struct {
	ID       int64
	Items    []EnrichedLineItem
	Metadata projection.Metadata
}
