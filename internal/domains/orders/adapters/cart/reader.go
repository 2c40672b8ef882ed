package cart

import (
	"context"
	"errors"
	"fmt"

	cartports "github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"
)

var _ ports.CartReader = (*Reader)(nil)

// Reader adapts the cart repository into the read-only view the orders
// context snapshots from.
type Reader struct {
	carts cartports.Repository
}

// NewReader wires the cart repository behind the orders-facing port.
func NewReader(carts cartports.Repository) *Reader {
	return &Reader{carts: carts}
}

// Cart loads a cart and flattens it into an orders-side snapshot.
func (r *Reader) Cart(ctx context.Context, id int64) (*types.CartSnapshot, error) {
	if r == nil || r.carts == nil {
		return nil, errors.New("cart reader not configured")
	}
	stored, err := r.carts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, cartports.ErrNotFound) {
			return nil, fmt.Errorf("cart %d: %w", id, ports.ErrCartNotFound)
		}
		return nil, err
	}
	cart := stored.Entity
	items := make([]types.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, types.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return &types.CartSnapshot{ID: cart.ID, Items: items}, nil
}
