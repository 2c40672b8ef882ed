package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vnstore/go-shop-api-server/internal/domains/cart/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// lineItemRecord is the embedded JSON shape of one line item.
type lineItemRecord struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// cartRecord maps the cart aggregate to a relational table. Line items live
// in a JSON column; version backs the compare-and-swap write.
type cartRecord struct {
	ID        int64            `gorm:"primaryKey;column:id"`
	Items     []lineItemRecord `gorm:"column:products;serializer:json"`
	Version   int64            `gorm:"column:version"`
	CreatedAt time.Time        `gorm:"column:created_at"`
	UpdatedAt time.Time        `gorm:"column:updated_at"`
}

func (cartRecord) TableName() string { return "carts" }

// Repository persists carts in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an empty cart and returns it.
func (r *Repository) Create(ctx context.Context) (*projection.Projection[*domain.Cart], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := cartRecord{Items: []lineItemRecord{}, Version: 1}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a cart by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Cart], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record cartRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

// Save persists the full line-item list with a version check. Zero affected
// rows means either the cart vanished or a concurrent writer bumped the
// version first; the two cases are told apart by re-reading.
func (r *Repository) Save(ctx context.Context, cart *domain.Cart) (*projection.Projection[*domain.Cart], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, errors.New("cart is nil")
	}
	items := make([]lineItemRecord, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, lineItemRecord{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	// The update goes through a raw map, so the JSON serializer is applied by hand.
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).
		Model(&cartRecord{}).
		Where("id = ? AND version = ?", cart.ID, cart.Version).
		Updates(map[string]any{
			"products":   string(payload),
			"version":    cart.Version + 1,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, cart.ID); err != nil {
			return nil, err
		}
		return nil, ports.ErrVersionConflict
	}
	return r.GetByID(ctx, cart.ID)
}

// Delete removes a cart and returns the pre-deletion snapshot.
func (r *Repository) Delete(ctx context.Context, id int64) (*projection.Projection[*domain.Cart], error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Delete(&cartRecord{}, id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return snapshot, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres cart repository not configured")
	}
	return nil
}

func (r cartRecord) toProjection() *projection.Projection[*domain.Cart] {
	items := make([]domain.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.LineItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	cart := &domain.Cart{ID: r.ID, Items: items, Version: r.Version}
	return projection.New(cart, r.CreatedAt, r.UpdatedAt)
}
