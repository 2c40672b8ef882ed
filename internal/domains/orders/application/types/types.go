package types

import (
	"time"

	"github.com/vnstore/go-shop-api-server/internal/domains/orders/domain"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

// OrderProjection is an order enriched with persistence metadata.
type OrderProjection = projection.Projection[*domain.Order]

// OrderIdentifier addresses a single order.
type OrderIdentifier struct {
	ID int64
}

// CreateOrderInput carries everything needed to place an order from a cart.
type CreateOrderInput struct {
	CartID         int64
	Shipping       domain.ShippingDetail
	Payment        string
	Note           string
	IdempotencyKey string
}

// AdvanceOrderInput requests a lifecycle step for an order.
type AdvanceOrderInput struct {
	OrderID int64
	Target  string
}

// CartSnapshot is the orders-side view of a cart at placement time.
type CartSnapshot struct {
	ID    int64
	Items []CartItem
}

// CartItem is one cart line as seen when snapshotting.
type CartItem struct {
	ProductID int64
	Quantity  int64
}

// CatalogProduct is the orders-side view of a product, used to freeze unit
// prices and to enrich order reads.
type CatalogProduct struct {
	ID           int64
	Name         string
	Price        int64
	Discount     int
	CurrentPrice int64
	Category     string
	Images       []string
}

// EnrichedItem pairs a frozen snapshot line with the product's current
// catalog view when it still exists.
type EnrichedItem struct {
	ProductID int64
	Quantity  int64
	UnitPrice int64
	Product   *CatalogProduct
}

// OrderView is the read model returned to transports.
type OrderView struct {
	ID           int64
	CartID       int64
	Items        []EnrichedItem
	Status       domain.Status
	Shipping     domain.ShippingDetail
	Payment      domain.PaymentMethod
	Note         string
	Total        int64
	OrderTime    time.Time
	ConfirmTime  *time.Time
	DeliveryTime *time.Time
	SuccessTime  *time.Time
	Metadata     projection.Metadata
}
