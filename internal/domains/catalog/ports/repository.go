package ports

import (
	"context"
	"errors"

	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/domain"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductRepository persists catalog products.
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) (*projection.Projection[*domain.Product], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Product], error)
	Delete(ctx context.Context, id int64) (*projection.Projection[*domain.Product], error)
	List(ctx context.Context, offset, limit int) ([]*projection.Projection[*domain.Product], error)
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository persists catalog categories. GetByName backs the
// check-then-write name uniqueness rule.
type CategoryRepository interface {
	Save(ctx context.Context, category *domain.Category) (*projection.Projection[*domain.Category], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Category], error)
	GetByName(ctx context.Context, name string) (*projection.Projection[*domain.Category], error)
	Delete(ctx context.Context, id int64) (*projection.Projection[*domain.Category], error)
	List(ctx context.Context, offset, limit int) ([]*projection.Projection[*domain.Category], error)
	Count(ctx context.Context) (int64, error)
}
