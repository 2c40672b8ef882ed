package ports

import (
	"context"
	"errors"
	"time"

	"github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository abstracts order persistence.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*types.OrderProjection, error)
	GetByID(ctx context.Context, id int64) (*types.OrderProjection, error)
	List(ctx context.Context, offset, limit int) ([]*types.OrderProjection, error)
	Count(ctx context.Context) (int64, error)
	// CancelStale flips PENDING orders older than the cutoff to CANCELLED and
	// returns how many rows changed.
	CancelStale(ctx context.Context, cutoff time.Time) (int64, error)
}
