// Package mapper translates between cart transport payloads and use case types.
package mapper

import (
	"time"

	types "github.com/vnstore/go-shop-api-server/internal/domains/cart/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/cart/domain"
)

// Product is the embedded product record attached to enriched line items.
type Product struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        int64    `json:"price"`
	Discount     int      `json:"discount"`
	CurrentPrice int64    `json:"currentPrice"`
	Category     string   `json:"category,omitempty"`
	Images       []string `json:"images"`
}

// LineItem is the HTTP representation of one cart line item.
type LineItem struct {
	ProductID int64    `json:"productId"`
	Quantity  int64    `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// Cart is the HTTP representation of a cart.
type Cart struct {
	ID        int64      `json:"id"`
	Products  []LineItem `json:"products"`
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
}

// UpdateCartRequest is the mutation payload for one line item.
type UpdateCartRequest struct {
	ProductID int64  `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity"`
	Type      string `json:"type" binding:"required"`
}

// ToUpdateInput validates the payload into a typed use case input.
func ToUpdateInput(cartID int64, payload UpdateCartRequest) (types.UpdateCartInput, error) {
	action, err := domain.ParseAction(payload.Type)
	if err != nil {
		return types.UpdateCartInput{}, err
	}
	return types.UpdateCartInput{
		CartID:    cartID,
		ProductID: payload.ProductID,
		Quantity:  payload.Quantity,
		Action:    action,
	}, nil
}

// FromView maps the enriched read model into the HTTP representation.
func FromView(view *types.CartView) Cart {
	if view == nil {
		return Cart{}
	}
	items := make([]LineItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   fromCatalogProduct(item.Product),
		})
	}
	return Cart{
		ID:        view.ID,
		Products:  items,
		CreatedAt: view.Metadata.CreatedAt,
		UpdatedAt: view.Metadata.UpdatedAt,
	}
}

func fromCatalogProduct(p *types.CatalogProduct) *Product {
	if p == nil {
		return nil
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return &Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Discount:     p.Discount,
		CurrentPrice: p.CurrentPrice,
		Category:     p.Category,
		Images:       images,
	}
}
