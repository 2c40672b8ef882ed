package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

var (
	_ ports.ProductRepository  = (*ProductRepository)(nil)
	_ ports.CategoryRepository = (*CategoryRepository)(nil)
)

type productEntry struct {
	product   domain.Product
	createdAt time.Time
	updatedAt time.Time
}

// ProductRepository is an in-memory product persistence adapter for tests and
// dev fallbacks.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]productEntry
	nextID   int64
	now      func() time.Time
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: map[int64]productEntry{}, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (r *ProductRepository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *ProductRepository) Save(_ context.Context, product *domain.Product) (*projection.Projection[*domain.Product], error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	clone.Images = append([]string{}, product.Images...)
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	now := r.now()
	entry, ok := r.products[clone.ID]
	if !ok {
		entry = productEntry{createdAt: now}
	}
	entry.product = clone
	entry.updatedAt = now
	r.products[clone.ID] = entry
	return entry.projection(), nil
}

func (r *ProductRepository) GetByID(_ context.Context, id int64) (*projection.Projection[*domain.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.products[id]
	if !ok {
		return nil, ports.ErrProductNotFound
	}
	return entry.projection(), nil
}

func (r *ProductRepository) Delete(_ context.Context, id int64) (*projection.Projection[*domain.Product], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.products[id]
	if !ok {
		return nil, ports.ErrProductNotFound
	}
	delete(r.products, id)
	return entry.projection(), nil
}

func (r *ProductRepository) List(_ context.Context, offset, limit int) ([]*projection.Projection[*domain.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]*projection.Projection[*domain.Product], 0, limit)
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		entry := r.products[ids[i]]
		result = append(result, entry.projection())
	}
	return result, nil
}

func (r *ProductRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

func (e productEntry) projection() *projection.Projection[*domain.Product] {
	clone := e.product
	clone.Images = append([]string{}, e.product.Images...)
	return projection.New(&clone, e.createdAt, e.updatedAt)
}

type categoryEntry struct {
	category  domain.Category
	createdAt time.Time
	updatedAt time.Time
}

// CategoryRepository is an in-memory category persistence adapter.
type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[int64]categoryEntry
	nextID     int64
	now        func() time.Time
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: map[int64]categoryEntry{}, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (r *CategoryRepository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *CategoryRepository) Save(_ context.Context, category *domain.Category) (*projection.Projection[*domain.Category], error) {
	if category == nil {
		return nil, errors.New("category is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *category
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	now := r.now()
	entry, ok := r.categories[clone.ID]
	if !ok {
		entry = categoryEntry{createdAt: now}
	}
	entry.category = clone
	entry.updatedAt = now
	r.categories[clone.ID] = entry
	return entry.projection(), nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id int64) (*projection.Projection[*domain.Category], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.categories[id]
	if !ok {
		return nil, ports.ErrCategoryNotFound
	}
	return entry.projection(), nil
}

func (r *CategoryRepository) GetByName(_ context.Context, name string) (*projection.Projection[*domain.Category], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.categories {
		if entry.category.Name == name {
			return entry.projection(), nil
		}
	}
	return nil, ports.ErrCategoryNotFound
}

func (r *CategoryRepository) Delete(_ context.Context, id int64) (*projection.Projection[*domain.Category], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.categories[id]
	if !ok {
		return nil, ports.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return entry.projection(), nil
}

func (r *CategoryRepository) List(_ context.Context, offset, limit int) ([]*projection.Projection[*domain.Category], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.categories))
	for id := range r.categories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]*projection.Projection[*domain.Category], 0, limit)
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		entry := r.categories[ids[i]]
		result = append(result, entry.projection())
	}
	return result, nil
}

func (r *CategoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.categories)), nil
}

func (e categoryEntry) projection() *projection.Projection[*domain.Category] {
	clone := e.category
	return projection.New(&clone, e.createdAt, e.updatedAt)
}
