package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

type entry struct {
	order     *domain.Order
	createdAt time.Time
	updatedAt time.Time
}

// Repository is an in-memory order store used for tests and local runs.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]*entry
	nextID int64
	now    func() time.Time
}

// Option customizes repository construction.
type Option func(*Repository)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRepository builds an empty in-memory order repository.
func NewRepository(opts ...Option) *Repository {
	r := &Repository{orders: map[int64]*entry{}, nextID: 1, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save inserts or updates an order, assigning an id on first write.
func (r *Repository) Save(_ context.Context, order *domain.Order) (*types.OrderProjection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now().UTC()
	if order.ID == 0 {
		order.ID = r.nextID
		r.nextID++
	}
	stored, ok := r.orders[order.ID]
	if !ok {
		stored = &entry{createdAt: now}
		r.orders[order.ID] = stored
		if order.ID >= r.nextID {
			r.nextID = order.ID + 1
		}
	}
	stored.order = cloneOrder(order)
	stored.updatedAt = now
	return r.projection(stored), nil
}

// GetByID returns the stored order or ports.ErrNotFound.
func (r *Repository) GetByID(_ context.Context, id int64) (*types.OrderProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return r.projection(stored), nil
}

// List returns orders sorted by id, windowed by offset and limit.
func (r *Repository) List(_ context.Context, offset, limit int) ([]*types.OrderProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if offset >= len(ids) {
		return []*types.OrderProjection{}, nil
	}
	ids = ids[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	projections := make([]*types.OrderProjection, 0, len(ids))
	for _, id := range ids {
		projections = append(projections, r.projection(r.orders[id]))
	}
	return projections, nil
}

// Count returns the number of stored orders.
func (r *Repository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

// CancelStale flips PENDING orders placed before the cutoff to CANCELLED.
func (r *Repository) CancelStale(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var cancelled int64
	now := r.now().UTC()
	for _, stored := range r.orders {
		if stored.order.Status == domain.StatusPending && stored.order.OrderTime.Before(cutoff) {
			stored.order.Status = domain.StatusCancelled
			stored.updatedAt = now
			cancelled++
		}
	}
	return cancelled, nil
}

func (r *Repository) projection(stored *entry) *types.OrderProjection {
	return projection.New(cloneOrder(stored.order), stored.createdAt, stored.updatedAt)
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Items = append([]domain.SnapshotItem{}, order.Items...)
	clone.ConfirmTime = cloneTime(order.ConfirmTime)
	clone.DeliveryTime = cloneTime(order.DeliveryTime)
	clone.SuccessTime = cloneTime(order.SuccessTime)
	return &clone
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}
