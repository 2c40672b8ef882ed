package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	types "github.com/vnstore/go-shop-api-server/internal/domains/catalog/application/types"
	catalogports "github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

const tracerName = "github.com/vnstore/go-shop-api-server/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) CreateProduct(ctx context.Context, input types.CreateProductInput) (*types.ProductProjection, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateProduct",
		trace.WithAttributes(attribute.Int64("product.id", input.ID)))
	defer span.End()

	result, err := s.inner.CreateProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create product", slog.Int64("product.id", input.ID))
	}
	s.metrics.recordProductWrite(ctx, "create")
	s.logInfo(ctx, "product created", slog.Int64("product.id", result.Entity.ID), slog.Int64("product.current_price", result.Entity.CurrentPrice))
	return result, nil
}

func (s *Service) UpdateProduct(ctx context.Context, input types.UpdateProductInput) (*types.ProductProjection, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdateProduct",
		trace.WithAttributes(attribute.Int64("product.id", input.ID)))
	defer span.End()

	result, err := s.inner.UpdateProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update product", slog.Int64("product.id", input.ID))
	}
	s.metrics.recordProductWrite(ctx, "update")
	s.logInfo(ctx, "product updated", slog.Int64("product.id", result.Entity.ID), slog.Int64("product.current_price", result.Entity.CurrentPrice))
	return result, nil
}

func (s *Service) GetProduct(ctx context.Context, input types.ProductIdentifier) (*types.ProductProjection, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProduct",
		trace.WithAttributes(attribute.Int64("product.id", input.ID)))
	defer span.End()

	result, err := s.inner.GetProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load product", slog.Int64("product.id", input.ID))
	}
	return result, nil
}

func (s *Service) ListProducts(ctx context.Context, page pagination.Request) (*pagination.Page[*types.ProductProjection], error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts",
		trace.WithAttributes(attribute.Int("page", page.Page), attribute.Int("limit", page.Limit)))
	defer span.End()

	result, err := s.inner.ListProducts(ctx, page)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int64("products.total", result.TotalElements))
	return result, nil
}

func (s *Service) DeleteProduct(ctx context.Context, input types.ProductIdentifier) (*types.ProductProjection, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.DeleteProduct",
		trace.WithAttributes(attribute.Int64("product.id", input.ID)))
	defer span.End()

	result, err := s.inner.DeleteProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to delete product", slog.Int64("product.id", input.ID))
	}
	s.metrics.recordProductWrite(ctx, "delete")
	s.logInfo(ctx, "product deleted", slog.Int64("product.id", input.ID))
	return result, nil
}

func (s *Service) CreateCategory(ctx context.Context, input types.CreateCategoryInput) (*types.CategoryProjection, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateCategory")
	defer span.End()

	result, err := s.inner.CreateCategory(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create category")
	}
	s.logInfo(ctx, "category created", slog.Int64("category.id", result.Entity.ID), slog.String("category.name", result.Entity.Name))
	return result, nil
}

func (s *Service) UpdateCategory(ctx context.Context, input types.UpdateCategoryInput) (*types.CategoryProjection, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdateCategory",
		trace.WithAttributes(attribute.Int64("category.id", input.ID)))
	defer span.End()

	result, err := s.inner.UpdateCategory(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update category", slog.Int64("category.id", input.ID))
	}
	s.logInfo(ctx, "category updated", slog.Int64("category.id", result.Entity.ID), slog.String("category.name", result.Entity.Name))
	return result, nil
}

func (s *Service) GetCategory(ctx context.Context, input types.CategoryIdentifier) (*types.CategoryProjection, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetCategory",
		trace.WithAttributes(attribute.Int64("category.id", input.ID)))
	defer span.End()

	result, err := s.inner.GetCategory(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load category", slog.Int64("category.id", input.ID))
	}
	return result, nil
}

func (s *Service) ListCategories(ctx context.Context, page pagination.Request) (*pagination.Page[*types.CategoryProjection], error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListCategories",
		trace.WithAttributes(attribute.Int("page", page.Page), attribute.Int("limit", page.Limit)))
	defer span.End()

	result, err := s.inner.ListCategories(ctx, page)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list categories")
	}
	span.SetAttributes(attribute.Int64("categories.total", result.TotalElements))
	return result, nil
}

func (s *Service) DeleteCategory(ctx context.Context, input types.CategoryIdentifier) (*types.CategoryProjection, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.DeleteCategory",
		trace.WithAttributes(attribute.Int64("category.id", input.ID)))
	defer span.End()

	result, err := s.inner.DeleteCategory(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to delete category", slog.Int64("category.id", input.ID))
	}
	s.logInfo(ctx, "category deleted", slog.Int64("category.id", input.ID))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	productWrites metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	productWrites, _ := m.Int64Counter("catalog.service.product_writes", metric.WithDescription("Number of product create/update/delete operations"))
	return serviceMetrics{productWrites: productWrites}
}

func (m serviceMetrics) recordProductWrite(ctx context.Context, op string) {
	if m.productWrites != nil {
		m.productWrites.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	}
}

var _ catalogports.Service = (*Service)(nil)
