package ports

import (
	"context"
	"errors"

	"github.com/vnstore/go-shop-api-server/internal/domains/cart/domain"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

var (
	ErrNotFound = errors.New("cart not found")
	// ErrVersionConflict signals the compare-and-swap write lost against a
	// concurrent writer; the caller re-reads and retries.
	ErrVersionConflict = errors.New("cart version conflict")
)

// Repository persists carts. Save is a version-checked write: it only
// succeeds when the stored version still matches cart.Version, and bumps the
// version on success.
type Repository interface {
	Create(ctx context.Context) (*projection.Projection[*domain.Cart], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Cart], error)
	Save(ctx context.Context, cart *domain.Cart) (*projection.Projection[*domain.Cart], error)
	Delete(ctx context.Context, id int64) (*projection.Projection[*domain.Cart], error)
}
