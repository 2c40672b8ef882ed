package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	types "github.com/vnstore/go-shop-api-server/internal/domains/cart/application/types"
	cartports "github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"
)

const tracerName = "github.com/vnstore/go-shop-api-server/internal/domains/cart/adapters/observability/service"

// Service decorates the cart service with tracing, logging, and metrics.
type Service struct {
	inner   cartports.Service
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

// New wraps the core cart service.
func New(inner cartports.Service, opts ...Option) cartports.Service {
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

func (s *Service) CreateCart(ctx context.Context) (*types.CartView, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.CreateCart")
	defer span.End()

	result, err := s.inner.CreateCart(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create cart")
	}
	s.logInfo(ctx, "cart created", slog.Int64("cart.id", result.ID))
	return result, nil
}

func (s *Service) GetCart(ctx context.Context, input types.CartIdentifier) (*types.CartView, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.GetCart",
		trace.WithAttributes(attribute.Int64("cart.id", input.ID)))
	defer span.End()

	result, err := s.inner.GetCart(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load cart", slog.Int64("cart.id", input.ID))
	}
	span.SetAttributes(attribute.Int("cart.items", len(result.Items)))
	return result, nil
}

func (s *Service) UpdateCart(ctx context.Context, input types.UpdateCartInput) (*types.CartView, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.UpdateCart",
		trace.WithAttributes(
			attribute.Int64("cart.id", input.CartID),
			attribute.Int64("product.id", input.ProductID),
			attribute.String("cart.action", string(input.Action)),
		))
	defer span.End()

	result, err := s.inner.UpdateCart(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update cart",
			slog.Int64("cart.id", input.CartID), slog.String("cart.action", string(input.Action)))
	}
	s.metrics.recordMutation(ctx, string(input.Action))
	s.logInfo(ctx, "cart updated",
		slog.Int64("cart.id", input.CartID),
		slog.Int64("product.id", input.ProductID),
		slog.String("cart.action", string(input.Action)))
	return result, nil
}

func (s *Service) ClearCart(ctx context.Context, input types.CartIdentifier) (*types.CartView, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.ClearCart",
		trace.WithAttributes(attribute.Int64("cart.id", input.ID)))
	defer span.End()

	result, err := s.inner.ClearCart(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to clear cart", slog.Int64("cart.id", input.ID))
	}
	s.logInfo(ctx, "cart cleared", slog.Int64("cart.id", input.ID))
	return result, nil
}

func (s *Service) DeleteCart(ctx context.Context, input types.CartIdentifier) (*types.CartView, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.DeleteCart",
		trace.WithAttributes(attribute.Int64("cart.id", input.ID)))
	defer span.End()

	result, err := s.inner.DeleteCart(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to delete cart", slog.Int64("cart.id", input.ID))
	}
	s.logInfo(ctx, "cart deleted", slog.Int64("cart.id", input.ID))
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
	mutations metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	mutations, _ := m.Int64Counter("cart.service.mutations", metric.WithDescription("Number of cart line-item mutations by action"))
	return serviceMetrics{mutations: mutations}
}

func (m serviceMetrics) recordMutation(ctx context.Context, action string) {
	if m.mutations != nil {
		m.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("cart.action", action)))
	}
}

var _ cartports.Service = (*Service)(nil)
