package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&categoryRecord{},
		&cartRecord{},
		&orderRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID           int64          `gorm:"primaryKey;column:id"`
	Name         string         `gorm:"column:name"`
	Description  string         `gorm:"column:description"`
	Price        int64          `gorm:"column:price"`
	Discount     int            `gorm:"column:discount"`
	CurrentPrice int64          `gorm:"column:current_price"`
	Category     string         `gorm:"column:category;index"`
	Images       pq.StringArray `gorm:"column:images;type:text[]"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Category schema mirrors the catalog Postgres adapter.
type categoryRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:name;uniqueIndex"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (categoryRecord) TableName() string { return "categories" }

// Cart schema mirrors the cart Postgres adapter.
type cartRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Items     string    `gorm:"column:products;type:jsonb"`
	Version   int64     `gorm:"column:version"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (cartRecord) TableName() string { return "carts" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID           int64      `gorm:"primaryKey;column:id"`
	CartID       int64      `gorm:"column:cart_id"`
	Items        string     `gorm:"column:products;type:jsonb"`
	Status       string     `gorm:"column:status;type:varchar(32);index"`
	Shipping     string     `gorm:"column:shipping_detail;type:jsonb"`
	Payment      string     `gorm:"column:payment_method;type:varchar(16)"`
	Note         string     `gorm:"column:note"`
	OrderTime    time.Time  `gorm:"column:order_time;index"`
	ConfirmTime  *time.Time `gorm:"column:confirm_time"`
	DeliveryTime *time.Time `gorm:"column:delivery_time"`
	SuccessTime  *time.Time `gorm:"column:success_time"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }
