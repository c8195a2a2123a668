// Package saga drives submitted orders through payment and shipping. Every stage
// is triggered by a change notification of the order store and ends with a write
// to it, which in turn triggers the next stage.
package saga

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/correlation"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	tracerName = "github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/saga"
	spanName   = "process-order-event"

	// PaymentUnavailable is recorded when the payment service could not be reached in time.
	PaymentUnavailable = "Payment service unavailable"
)

type OrderStore interface {
	Put(ctx context.Context, order entities.Order) error
	Subscribe(handler entities.ChangeHandler)
}

type PaymentClient interface {
	Authorize(ctx context.Context, req entities.PaymentRequest) (*entities.Payment, error)
}

type ShippingClient interface {
	Ship(ctx context.Context, req entities.ShippingRequest) (*entities.Shipment, error)
}

// Guard hands out each key once until it is released or expires.
type Guard interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type Option func(*Engine)

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		e.tracer = tp.Tracer(tracerName)
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

type Engine struct {
	logger   *slog.Logger
	cfg      config.Saga
	store    OrderStore
	payment  PaymentClient
	shipping ShippingClient
	guard    Guard
	tracer   trace.Tracer
	now      func() time.Time
}

func New(logger *slog.Logger, cfg config.Saga, store OrderStore, payment PaymentClient, shipping ShippingClient, guard Guard, opts ...Option) *Engine {
	e := &Engine{
		logger:   logger.With(slog.String("service", "saga")),
		cfg:      cfg,
		store:    store,
		payment:  payment,
		shipping: shipping,
		guard:    guard,
		tracer:   noop.NewTracerProvider().Tracer(tracerName),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start registers OnOrderChanged with the store. It must run before the store's
// change feed is consumed.
func (e *Engine) Start(_ context.Context) error {
	e.store.Subscribe(e.OnOrderChanged)
	return nil
}

// Submit persists order in status CREATED and returns without waiting for any
// later stage. A valid correlation token on order is kept, otherwise one is
// derived from ctx.
func (e *Engine) Submit(ctx context.Context, order entities.Order) (entities.Order, error) {
	o := order.Clone()
	if o.OrderID == "" {
		o.OrderID = uuid.NewString()
	}
	if o.Date.IsZero() {
		o.Date = e.now().UTC()
	}
	if o.Status == "" {
		o.Status = entities.StatusCreated
	}
	if o.Status != entities.StatusCreated {
		return entities.Order{}, fmt.Errorf("%w: submitted in status %s", entities.ErrInvalidOrder, o.Status)
	}
	if !correlation.Valid(o.CorrelationToken) {
		o.CorrelationToken = correlation.New(ctx)
	}
	o.Payment, o.Shipment = nil, nil
	o.Version = 0

	if err := e.store.Put(ctx, o); err != nil {
		return entities.Order{}, fmt.Errorf("failed to submit order %s: %w", o.OrderID, err)
	}
	o.Version = 1

	ordersSubmitted.Inc()
	e.logger.InfoContext(ctx, "order submitted",
		slog.String("order_id", o.OrderID),
		slog.String("correlation_token", o.CorrelationToken),
	)
	return o, nil
}

// OnOrderChanged runs the stage the delivered record calls for and persists its
// outcome. It is the handler registered with the store's Subscribe.
func (e *Engine) OnOrderChanged(ctx context.Context, change entities.OrderChange) error {
	order := change.Order
	effect := NextEffect(order)
	if effect == EffectNone {
		return nil
	}

	ctx, span := e.tracer.Start(correlation.ContextWith(ctx, order.CorrelationToken), spanName,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("order.id", order.OrderID),
			attribute.String("order.status", string(order.Status)),
			attribute.Int64("order.version", order.Version),
		),
	)
	defer span.End()

	logger := e.logger.With(
		slog.String("order_id", order.OrderID),
		slog.String("stage", effect.String()),
		slog.Int64("version", order.Version),
		slog.String("correlation_token", order.CorrelationToken),
	)

	key := claimKey(order, effect)
	claimed, err := e.guard.Claim(ctx, key)
	if err != nil {
		return e.fail(span, effect, fmt.Errorf("failed to claim %s: %w", key, err))
	}
	if !claimed {
		duplicatesSkipped.Inc()
		logger.DebugContext(ctx, "stage already claimed, skipping duplicate")
		return nil
	}

	start := time.Now()
	var next entities.Order
	switch effect {
	case EffectAuthorizePayment:
		next, err = e.processPayment(ctx, logger, order)
	case EffectShip:
		next, err = e.shipOrder(ctx, order)
	}
	if err != nil {
		e.release(ctx, logger, key)
		return e.fail(span, effect, err)
	}

	next.CorrelationToken = order.CorrelationToken
	if err := e.store.Put(ctx, next); err != nil {
		if errors.Is(err, entities.ErrVersionConflict) {
			logger.WarnContext(ctx, "order moved on before the stage was persisted", slog.Any("error", err))
			return nil
		}
		e.release(ctx, logger, key)
		return e.fail(span, effect, fmt.Errorf("failed to persist order %s: %w", order.OrderID, err))
	}

	stageDuration.WithLabelValues(effect.String()).Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.String("order.next_status", string(next.Status)))
	logger.InfoContext(ctx, "order advanced", slog.String("status", string(next.Status)))
	return nil
}

func (e *Engine) processPayment(ctx context.Context, logger *slog.Logger, order entities.Order) (entities.Order, error) {
	req := entities.PaymentRequest{
		OrderID:          order.OrderID,
		Customer:         order.Customer,
		Address:          order.Address,
		Card:             order.Card,
		Amount:           order.Total,
		CorrelationToken: order.CorrelationToken,
		IdempotencyKey:   idempotencyKey(order),
	}

	rctx, cancel := context.WithTimeout(ctx, e.cfg.PaymentTimeout)
	defer cancel()

	payment, err := e.payment.Authorize(rctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return order, fmt.Errorf("payment of order %s aborted: %w", order.OrderID, ctx.Err())
		}
		logger.WarnContext(ctx, "payment authorization failed", slog.Any("error", err))
		payment = &entities.Payment{Message: PaymentUnavailable}
	}

	next, err := Advance(order, Result{Payment: payment})
	var declined *entities.PaymentDeclinedError
	if errors.As(err, &declined) {
		stagesTotal.WithLabelValues(EffectAuthorizePayment.String(), "declined").Inc()
		logger.InfoContext(ctx, "payment declined", slog.String("reason", declined.Reason))
		return next, nil
	}
	if err != nil {
		return order, err
	}

	stagesTotal.WithLabelValues(EffectAuthorizePayment.String(), "authorised").Inc()
	return next, nil
}

func (e *Engine) shipOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	req := entities.ShippingRequest{
		OrderID:          order.OrderID,
		Customer:         order.Customer,
		Address:          order.Address,
		ItemCount:        len(order.Items),
		CorrelationToken: order.CorrelationToken,
	}

	rctx, cancel := context.WithTimeout(ctx, e.cfg.ShippingTimeout)
	defer cancel()

	shipment, err := e.shipping.Ship(rctx, req)
	if err != nil {
		return order, fmt.Errorf("failed to ship order %s: %w", order.OrderID, err)
	}

	next, err := Advance(order, Result{Shipment: shipment})
	if err != nil {
		return order, err
	}

	stagesTotal.WithLabelValues(EffectShip.String(), "shipped").Inc()
	return next, nil
}

func (e *Engine) fail(span trace.Span, effect Effect, err error) error {
	stagesTotal.WithLabelValues(effect.String(), "failed").Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func (e *Engine) release(ctx context.Context, logger *slog.Logger, key string) {
	if err := e.guard.Release(context.WithoutCancel(ctx), key); err != nil {
		logger.ErrorContext(ctx, "failed to release claim", slog.String("key", key), slog.Any("error", err))
	}
}

func claimKey(o entities.Order, effect Effect) string {
	return fmt.Sprintf("%s/%d/%s", o.OrderID, o.Version, effect)
}

// idempotencyKey identifies one payment attempt; a redelivered change of the same
// version asks the payment service for the same authorization again.
func idempotencyKey(o entities.Order) string {
	return fmt.Sprintf("%s/%d", o.OrderID, o.Version)
}
