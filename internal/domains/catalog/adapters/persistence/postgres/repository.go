package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

var (
	_ ports.ProductRepository  = (*ProductRepository)(nil)
	_ ports.CategoryRepository = (*CategoryRepository)(nil)
)

// productRecord maps the product aggregate to a relational table.
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

// categoryRecord maps the category aggregate to a relational table.
type categoryRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:name;uniqueIndex"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (categoryRecord) TableName() string { return "categories" }

// ProductRepository persists products in PostgreSQL using GORM.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Save inserts or updates a product.
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) (*projection.Projection[*domain.Product], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := toProductRecord(product)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":          record.Name,
				"description":   record.Description,
				"price":         record.Price,
				"discount":      record.Discount,
				"current_price": record.CurrentPrice,
				"category":      record.Category,
				"images":        record.Images,
				"updated_at":    gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a product by identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Product], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrProductNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

// Delete removes a product and returns the pre-deletion snapshot.
func (r *ProductRepository) Delete(ctx context.Context, id int64) (*projection.Projection[*domain.Product], error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Delete(&productRecord{}, id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrProductNotFound
	}
	return snapshot, nil
}

// List returns one offset/limit page of products ordered by id.
func (r *ProductRepository) List(ctx context.Context, offset, limit int) ([]*projection.Projection[*domain.Product], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	result := make([]*projection.Projection[*domain.Product], 0, len(records))
	for i := range records {
		result = append(result, records[i].toProjection())
	}
	return result, nil
}

// Count returns the total unfiltered product row count.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&productRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product repository not configured")
	}
	return nil
}

func toProductRecord(product *domain.Product) productRecord {
	return productRecord{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		Discount:     product.Discount,
		CurrentPrice: product.CurrentPrice,
		Category:     product.Category,
		Images:       pq.StringArray(product.Images),
	}
}

func (r productRecord) toProjection() *projection.Projection[*domain.Product] {
	product := &domain.Product{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Discount:     r.Discount,
		CurrentPrice: r.CurrentPrice,
		Category:     r.Category,
		Images:       append([]string{}, r.Images...),
	}
	return projection.New(product, r.CreatedAt, r.UpdatedAt)
}

// CategoryRepository persists categories in PostgreSQL using GORM.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Save inserts or updates a category.
func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) (*projection.Projection[*domain.Category], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category is nil")
	}
	record := categoryRecord{ID: category.ID, Name: category.Name, Description: category.Description}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":        record.Name,
				"description": record.Description,
				"updated_at":  gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a category by identifier.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Category], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record categoryRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrCategoryNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

// GetByName fetches a category by its unique name.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*projection.Projection[*domain.Category], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record categoryRecord
	if err := r.db.WithContext(ctx).First(&record, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrCategoryNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

// Delete removes a category and returns the pre-deletion snapshot.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) (*projection.Projection[*domain.Category], error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Delete(&categoryRecord{}, id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrCategoryNotFound
	}
	return snapshot, nil
}

// List returns one offset/limit page of categories ordered by id.
func (r *CategoryRepository) List(ctx context.Context, offset, limit int) ([]*projection.Projection[*domain.Category], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	result := make([]*projection.Projection[*domain.Category], 0, len(records))
	for i := range records {
		result = append(result, records[i].toProjection())
	}
	return result, nil
}

// Count returns the total unfiltered category row count.
func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&categoryRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CategoryRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres category repository not configured")
	}
	return nil
}

func (r categoryRecord) toProjection() *projection.Projection[*domain.Category] {
	category := &domain.Category{ID: r.ID, Name: r.Name, Description: r.Description}
	return projection.New(category, r.CreatedAt, r.UpdatedAt)
}
