package ports

import (
	"context"

	types "github.com/vnstore/go-shop-api-server/internal/domains/cart/application/types"
)

// Service exposes the cart use cases to adapters.
type Service interface {
	CreateCart(ctx context.Context) (*types.CartView, error)
	GetCart(ctx context.Context, input types.CartIdentifier) (*types.CartView, error)
	UpdateCart(ctx context.Context, input types.UpdateCartInput) (*types.CartView, error)
	ClearCart(ctx context.Context, input types.CartIdentifier) (*types.CartView, error)
	DeleteCart(ctx context.Context, input types.CartIdentifier) (*types.CartView, error)
}
