package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vnstore/go-shop-api-server/internal/domains/cart/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

type cartEntry struct {
	cart      domain.Cart
	createdAt time.Time
	updatedAt time.Time
}

// Repository is an in-memory cart persistence adapter. Save honors the same
// version-checked contract as the postgres adapter, so the conflict path is
// testable without a database.
type Repository struct {
	mu     sync.RWMutex
	carts  map[int64]cartEntry
	nextID int64
	now    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{carts: map[int64]cartEntry{}, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *Repository) Create(_ context.Context) (*projection.Projection[*domain.Cart], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := r.now()
	entry := cartEntry{cart: domain.Cart{ID: r.nextID, Version: 1}, createdAt: now, updatedAt: now}
	r.carts[r.nextID] = entry
	return entry.projection(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*projection.Projection[*domain.Cart], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.carts[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return entry.projection(), nil
}

func (r *Repository) Save(_ context.Context, cart *domain.Cart) (*projection.Projection[*domain.Cart], error) {
	if cart == nil {
		return nil, errors.New("cart is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.carts[cart.ID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	if entry.cart.Version != cart.Version {
		return nil, ports.ErrVersionConflict
	}
	entry.cart.Items = append([]domain.LineItem{}, cart.Items...)
	entry.cart.Version = cart.Version + 1
	entry.updatedAt = r.now()
	r.carts[cart.ID] = entry
	return entry.projection(), nil
}

func (r *Repository) Delete(_ context.Context, id int64) (*projection.Projection[*domain.Cart], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.carts[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	delete(r.carts, id)
	return entry.projection(), nil
}

func (e cartEntry) projection() *projection.Projection[*domain.Cart] {
	clone := e.cart
	clone.Items = append([]domain.LineItem{}, e.cart.Items...)
	return projection.New(&clone, e.createdAt, e.updatedAt)
}
