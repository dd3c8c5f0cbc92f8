package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	"github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	ordersdomain "github.com/hungryhub/food-order-api/internal/domains/orders/domain"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

const tracerName = "github.com/hungryhub/food-order-api/internal/domains/carts/adapters/observability"

// Service decorates the carts application port with tracing, logging,
// and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
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
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// GetCart loads or creates the user's cart with instrumentation.
func (s *Service) GetCart(ctx context.Context, userID id.UserID) (*domain.Cart, error) {
	ctx, span := s.startSpan(ctx, "Service.GetCart", attribute.String("user.id", userID.String()))
	defer span.End()

	result, err := s.inner.GetCart(ctx, userID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load cart", slog.String("user.id", userID.String()))
	}
	span.SetAttributes(attribute.Int("cart.lines", len(result.LineItems())))
	return result, nil
}

// AddItem merges an item into the user's cart with instrumentation.
func (s *Service) AddItem(ctx context.Context, input ports.AddItemInput) (*domain.Cart, error) {
	ctx, span := s.startSpan(ctx, "Service.AddItem",
		attribute.String("user.id", input.UserID.String()),
		attribute.String("shop.id", input.ShopID.String()),
		attribute.String("menu.id", input.MenuID.String()),
		attribute.Int("cart.quantity", input.Quantity),
	)
	defer span.End()

	s.logInfo(ctx, "adding cart item",
		slog.String("user.id", input.UserID.String()),
		slog.String("menu.id", input.MenuID.String()),
		slog.Int("quantity", input.Quantity),
	)
	result, err := s.inner.AddItem(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add cart item", slog.String("user.id", input.UserID.String()))
	}
	s.metrics.recordItemAdded(ctx, input.ShopID)
	s.logInfo(ctx, "cart item added",
		slog.String("cart.id", result.ID().String()),
		slog.Int("lines", len(result.LineItems())),
	)
	return result, nil
}

// RemoveItem drops a line from the user's cart with instrumentation.
func (s *Service) RemoveItem(ctx context.Context, userID id.UserID, menuID id.MenuID, optionIDs []id.OptionID) (*domain.Cart, error) {
	ctx, span := s.startSpan(ctx, "Service.RemoveItem",
		attribute.String("user.id", userID.String()),
		attribute.String("menu.id", menuID.String()),
	)
	defer span.End()

	s.logInfo(ctx, "removing cart item", slog.String("user.id", userID.String()), slog.String("menu.id", menuID.String()))
	result, err := s.inner.RemoveItem(ctx, userID, menuID, optionIDs)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to remove cart item", slog.String("user.id", userID.String()))
	}
	span.SetAttributes(attribute.Int("cart.lines", len(result.LineItems())))
	return result, nil
}

// ClearCart empties the user's cart with instrumentation.
func (s *Service) ClearCart(ctx context.Context, userID id.UserID) (*domain.Cart, error) {
	ctx, span := s.startSpan(ctx, "Service.ClearCart", attribute.String("user.id", userID.String()))
	defer span.End()

	s.logInfo(ctx, "clearing cart", slog.String("user.id", userID.String()))
	result, err := s.inner.ClearCart(ctx, userID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to clear cart", slog.String("user.id", userID.String()))
	}
	return result, nil
}

// PlaceOrder converts the user's cart into an order with instrumentation.
func (s *Service) PlaceOrder(ctx context.Context, userID id.UserID) (*ordersdomain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.PlaceOrder", attribute.String("user.id", userID.String()))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.String("user.id", userID.String()))
	result, err := s.inner.PlaceOrder(ctx, userID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.String("user.id", userID.String()))
	}
	span.SetAttributes(
		attribute.String("order.id", result.ID().String()),
		attribute.Int("order.lines", len(result.LineItems())),
	)
	s.metrics.recordOrderPlaced(ctx, result.ShopID())
	s.logInfo(ctx, "order placed",
		slog.String("order.id", result.ID().String()),
		slog.String("order.total", result.TotalPrice().String()),
	)
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
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
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	itemsAdded   metric.Int64Counter
	ordersPlaced metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	itemsAdded, _ := m.Int64Counter("carts.service.items_added", metric.WithDescription("Number of cart items added"))
	ordersPlaced, _ := m.Int64Counter("carts.service.orders_placed", metric.WithDescription("Number of orders placed from carts"))
	return serviceMetrics{itemsAdded: itemsAdded, ordersPlaced: ordersPlaced}
}

func (m serviceMetrics) recordItemAdded(ctx context.Context, shopID id.ShopID) {
	addCounter(ctx, m.itemsAdded, 1, attribute.String("shop.id", shopID.String()))
}

func (m serviceMetrics) recordOrderPlaced(ctx context.Context, shopID id.ShopID) {
	addCounter(ctx, m.ordersPlaced, 1, attribute.String("shop.id", shopID.String()))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
