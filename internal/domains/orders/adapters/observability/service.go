package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	types "github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	ordersports "github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

const tracerName = "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
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

// New wraps the core orders service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
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

func (s *Service) CreateOrder(ctx context.Context, input types.CreateOrderInput) (*types.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder",
		trace.WithAttributes(
			attribute.Int64("cart.id", input.CartID),
			attribute.String("order.payment", input.Payment),
		))
	defer span.End()

	result, err := s.inner.CreateOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order", slog.Int64("cart.id", input.CartID))
	}
	s.metrics.recordPlacement(ctx, input.Payment)
	s.logInfo(ctx, "order created",
		slog.Int64("order.id", result.ID),
		slog.Int64("cart.id", input.CartID),
		slog.Int64("order.total", result.Total))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, input types.OrderIdentifier) (*types.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrder",
		trace.WithAttributes(attribute.Int64("order.id", input.ID)))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", input.ID))
	}
	span.SetAttributes(attribute.String("order.status", string(result.Status)))
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context, request pagination.Request) (*pagination.Page[*types.OrderView], error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders",
		trace.WithAttributes(
			attribute.Int("page", request.Page),
			attribute.Int("limit", request.Limit),
		))
	defer span.End()

	result, err := s.inner.ListOrders(ctx, request)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int64("orders.total", result.TotalElements))
	return result, nil
}

func (s *Service) AdvanceOrder(ctx context.Context, input types.AdvanceOrderInput) (*types.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.AdvanceOrder",
		trace.WithAttributes(
			attribute.Int64("order.id", input.OrderID),
			attribute.String("order.target_status", input.Target),
		))
	defer span.End()

	result, err := s.inner.AdvanceOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to advance order",
			slog.Int64("order.id", input.OrderID), slog.String("order.target_status", input.Target))
	}
	s.metrics.recordTransition(ctx, input.Target)
	s.logInfo(ctx, "order advanced",
		slog.Int64("order.id", input.OrderID),
		slog.String("order.status", string(result.Status)))
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
	placements  metric.Int64Counter
	transitions metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	placements, _ := m.Int64Counter("orders.service.placements", metric.WithDescription("Number of orders placed by payment method"))
	transitions, _ := m.Int64Counter("orders.service.transitions", metric.WithDescription("Number of order status transitions by target"))
	return serviceMetrics{placements: placements, transitions: transitions}
}

func (m serviceMetrics) recordPlacement(ctx context.Context, payment string) {
	if m.placements != nil {
		m.placements.Add(ctx, 1, metric.WithAttributes(attribute.String("order.payment", payment)))
	}
}

func (m serviceMetrics) recordTransition(ctx context.Context, target string) {
	if m.transitions != nil {
		m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("order.target_status", target)))
	}
}

var _ ordersports.Service = (*Service)(nil)
