package domain

import "errors"

// UpdateAction selects how a cart mutation affects an existing line item.
type UpdateAction string

const (
	ActionIncrease UpdateAction = "INCREASE"
	ActionDecrease UpdateAction = "DECREASE"
	ActionRemove   UpdateAction = "REMOVE"
)

var (
	ErrUnknownAction   = errors.New("unknown cart update action")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// ParseAction validates a raw action value.
func ParseAction(raw string) (UpdateAction, error) {
	switch UpdateAction(raw) {
	case ActionIncrease, ActionDecrease, ActionRemove:
		return UpdateAction(raw), nil
	default:
		return "", ErrUnknownAction
	}
}

// LineItem is a (productId, quantity) pair inside a cart.
type LineItem struct {
	ProductID int64
	Quantity  int64
}

// Cart is the aggregate owning line items. Product ids are unique within a
// cart and quantities are always positive; an item whose quantity reaches
// zero is removed. Version backs the compare-and-swap write in the
// repository, ruling out lost updates between concurrent read-modify-write
// cycles on the same cart.
type Cart struct {
	ID      int64
	Items   []LineItem
	Version int64
}

// NewCart builds an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Apply mutates the line items according to the action. A product not yet in
// the cart is inserted with the given quantity whatever the action, except
// REMOVE which stays an idempotent no-op. DECREASE clamps at zero and drops
// the item when it gets there.
func (c *Cart) Apply(action UpdateAction, productID, quantity int64) error {
	idx := c.indexOf(productID)
	if idx < 0 {
		if action == ActionRemove {
			return nil
		}
		if quantity <= 0 {
			return ErrInvalidQuantity
		}
		c.Items = append(c.Items, LineItem{ProductID: productID, Quantity: quantity})
		return nil
	}
	switch action {
	case ActionIncrease:
		if quantity <= 0 {
			return ErrInvalidQuantity
		}
		c.Items[idx].Quantity += quantity
	case ActionDecrease:
		if quantity <= 0 {
			return ErrInvalidQuantity
		}
		c.Items[idx].Quantity -= quantity
		if c.Items[idx].Quantity <= 0 {
			c.removeAt(idx)
		}
	case ActionRemove:
		c.removeAt(idx)
	default:
		return ErrUnknownAction
	}
	return nil
}

// Clear drops every line item.
func (c *Cart) Clear() {
	c.Items = nil
}

// Quantity reports the stored quantity for a product, zero when absent.
func (c *Cart) Quantity(productID int64) int64 {
	if idx := c.indexOf(productID); idx >= 0 {
		return c.Items[idx].Quantity
	}
	return 0
}

func (c *Cart) indexOf(productID int64) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(idx int) {
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}
