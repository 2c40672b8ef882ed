package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// snapshotItemRecord is the embedded JSON shape of one frozen order line.
type snapshotItemRecord struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
}

// shippingRecord is the embedded JSON shape of the delivery address.
type shippingRecord struct {
	Address  string `json:"address"`
	Province string `json:"province"`
	District string `json:"district"`
	Ward     string `json:"ward"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
}

// orderRecord maps the order aggregate to a relational table. The snapshot
// lines and the shipping detail live in JSON columns because they are only
// ever read and written whole.
type orderRecord struct {
	ID           int64                `gorm:"primaryKey;column:id"`
	CartID       int64                `gorm:"column:cart_id"`
	Items        []snapshotItemRecord `gorm:"column:products;serializer:json"`
	Status       string               `gorm:"column:status;index"`
	Shipping     shippingRecord       `gorm:"column:shipping_detail;serializer:json"`
	Payment      string               `gorm:"column:payment_method"`
	Note         string               `gorm:"column:note"`
	OrderTime    time.Time            `gorm:"column:order_time"`
	ConfirmTime  *time.Time           `gorm:"column:confirm_time"`
	DeliveryTime *time.Time           `gorm:"column:delivery_time"`
	SuccessTime  *time.Time           `gorm:"column:success_time"`
	CreatedAt    time.Time            `gorm:"column:created_at"`
	UpdatedAt    time.Time            `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts a new order or replaces the lifecycle fields of an existing one.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*types.OrderProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":        record.Status,
				"confirm_time":  record.ConfirmTime,
				"delivery_time": record.DeliveryTime,
				"success_time":  record.SuccessTime,
				"updated_at":    gorm.Expr("NOW()"),
			}),
		}).
		Create(record).Error
	if err != nil {
		return nil, err
	}
	order.ID = record.ID
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*types.OrderProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

// List returns a window of orders sorted by identifier.
func (r *Repository) List(ctx context.Context, offset, limit int) ([]*types.OrderProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	projections := make([]*types.OrderProjection, 0, len(records))
	for _, record := range records {
		projections = append(projections, record.toProjection())
	}
	return projections, nil
}

// Count returns the unfiltered order count.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&orderRecord{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CancelStale bulk-cancels PENDING orders placed before the cutoff.
func (r *Repository) CancelStale(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("status = ? AND order_time < ?", string(domain.StatusPending), cutoff).
		Updates(map[string]any{
			"status":     string(domain.StatusCancelled),
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) *orderRecord {
	items := make([]snapshotItemRecord, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, snapshotItemRecord{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return &orderRecord{
		ID:     order.ID,
		CartID: order.CartID,
		Items:  items,
		Status: string(order.Status),
		Shipping: shippingRecord{
			Address:  order.Shipping.Address,
			Province: order.Shipping.Province,
			District: order.Shipping.District,
			Ward:     order.Shipping.Ward,
			Name:     order.Shipping.Name,
			Phone:    order.Shipping.Phone,
			Email:    order.Shipping.Email,
		},
		Payment:      string(order.Payment),
		Note:         order.Note,
		OrderTime:    order.OrderTime,
		ConfirmTime:  order.ConfirmTime,
		DeliveryTime: order.DeliveryTime,
		SuccessTime:  order.SuccessTime,
	}
}

func (r orderRecord) toProjection() *types.OrderProjection {
	items := make([]domain.SnapshotItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.SnapshotItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	order := &domain.Order{
		ID:     r.ID,
		CartID: r.CartID,
		Items:  items,
		Status: domain.Status(r.Status),
		Shipping: domain.ShippingDetail{
			Address:  r.Shipping.Address,
			Province: r.Shipping.Province,
			District: r.Shipping.District,
			Ward:     r.Shipping.Ward,
			Name:     r.Shipping.Name,
			Phone:    r.Shipping.Phone,
			Email:    r.Shipping.Email,
		},
		Payment:      domain.PaymentMethod(r.Payment),
		Note:         r.Note,
		OrderTime:    r.OrderTime,
		ConfirmTime:  r.ConfirmTime,
		DeliveryTime: r.DeliveryTime,
		SuccessTime:  r.SuccessTime,
	}
	return projection.New(order, r.CreatedAt, r.UpdatedAt)
}
