package saga_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/correlation"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/feed"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/guard"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/saga"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

var submitDate = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

type fakePayment struct {
	mu     sync.Mutex
	calls  []entities.PaymentRequest
	answer func(req entities.PaymentRequest) entities.Payment
}

func (p *fakePayment) Authorize(_ context.Context, req entities.PaymentRequest) (*entities.Payment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, req)
	res := p.answer(req)
	return &res, nil
}

func (p *fakePayment) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

type countingShipping struct {
	*shipping.ReferenceClient

	mu    sync.Mutex
	calls []entities.ShippingRequest
}

func (s *countingShipping) Ship(ctx context.Context, req entities.ShippingRequest) (*entities.Shipment, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()
	return s.ReferenceClient.Ship(ctx, req)
}

func (s *countingShipping) requests() []entities.ShippingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.ShippingRequest(nil), s.calls...)
}

type statusLog struct {
	mu   sync.Mutex
	seen map[string][]entities.Status
}

func (l *statusLog) record(_ context.Context, change entities.OrderChange) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen[change.Order.OrderID] = append(l.seen[change.Order.OrderID], change.Order.Status)
	return nil
}

func (l *statusLog) of(orderID string) []entities.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]entities.Status(nil), l.seen[orderID]...)
}

type flow struct {
	engine   *saga.Engine
	store    *feed.Memory
	payment  *fakePayment
	shipping *countingShipping
	statuses *statusLog
	spans    *tracetest.SpanRecorder
}

// newFlow wires the engine to the in-memory store and guard. Payments over
// declineOver are declined with "insufficient funds".
func newFlow(t *testing.T, declineOver float64) *flow {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return submitDate }

	f := &flow{
		store: feed.NewMemory(logger, 4),
		payment: &fakePayment{answer: func(req entities.PaymentRequest) entities.Payment {
			if req.Amount > declineOver {
				return entities.Payment{Message: "insufficient funds"}
			}
			return entities.Payment{Authorised: true, Message: "Payment authorised"}
		}},
		shipping: &countingShipping{ReferenceClient: shipping.NewReferenceClient(clock)},
		statuses: &statusLog{seen: make(map[string][]entities.Status)},
		spans:    tracetest.NewSpanRecorder(),
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(f.spans))
	f.engine = saga.New(logger, sagaConfig, f.store, f.payment, f.shipping, guard.NewMemory(time.Hour),
		saga.WithTracerProvider(tp),
		saga.WithClock(clock),
	)

	f.store.Subscribe(f.statuses.record)
	require.NoError(t, f.engine.Start(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.store.Consume(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return f
}

func (f *flow) awaitTerminal(t *testing.T, orderID string) entities.Order {
	t.Helper()
	var order entities.Order
	require.Eventually(t, func() bool {
		o, err := f.store.Get(context.Background(), orderID)
		if err != nil {
			return false
		}
		order = o
		return o.Status.Terminal() && len(f.statuses.of(orderID)) == int(o.Version)
	}, 2*time.Second, 5*time.Millisecond)
	return order
}

func newOrder(id string, items int, price float64) entities.Order {
	o := entities.Order{
		OrderID:  id,
		Customer: entities.Customer{ID: "c-1", FirstName: "Ada", LastName: "Lovelace"},
		Address:  entities.Address{Street: "1 Main St", City: "London", Postcode: "N1", Country: "UK"},
		Card:     entities.Card{LongNum: "4111111111111111", Expires: "12/30", CCV: "123"},
	}
	for i := 0; i < items; i++ {
		o.Items = append(o.Items, entities.Item{ItemID: "sock", Quantity: 1, UnitPrice: price})
	}
	o.Total = float64(items)*price + 4.99
	return o
}

func TestFlow_Shipped(t *testing.T) {
	testCases := []struct {
		name         string
		items        int
		wantCarrier  string
		wantTracking string
		wantDays     int
	}{
		{"single item", 1, "FEDEX", "231300687629630", 1},
		{"two items", 2, "UPS", "1Z999AA10123456784", 3},
		{"four items", 4, "USPS", "9205 5000 0000 0000 0000 00", 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFlow(t, 1000)

			submitted, err := f.engine.Submit(context.Background(), newOrder("o-1", tc.items, 10))
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCreated, submitted.Status)

			order := f.awaitTerminal(t, "o-1")

			assert.Equal(t, entities.StatusShipped, order.Status)
			require.NotNil(t, order.Payment)
			assert.True(t, order.Payment.Authorised)
			require.NotNil(t, order.Shipment)
			assert.Equal(t, tc.wantCarrier, order.Shipment.Carrier)
			assert.Equal(t, tc.wantTracking, order.Shipment.TrackingNumber)
			assert.Equal(t, time.Date(2024, 5, 1+tc.wantDays, 0, 0, 0, 0, time.UTC), order.Shipment.DeliveryDate)
			assert.Equal(t, submitted.CorrelationToken, order.CorrelationToken)
			assert.Equal(t, int64(3), order.Version)

			reqs := f.shipping.requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, tc.items, reqs[0].ItemCount)
			assert.Equal(t, 1, f.payment.count())

			assert.Equal(t, []entities.Status{entities.StatusCreated, entities.StatusPaid, entities.StatusShipped}, f.statuses.of("o-1"))
		})
	}
}

func TestFlow_Declined(t *testing.T) {
	f := newFlow(t, 50)

	submitted, err := f.engine.Submit(context.Background(), newOrder("o-1", 2, 100))
	require.NoError(t, err)

	order := f.awaitTerminal(t, "o-1")

	assert.Equal(t, entities.StatusPaymentFailed, order.Status)
	require.NotNil(t, order.Payment)
	assert.False(t, order.Payment.Authorised)
	assert.Equal(t, "insufficient funds", order.Payment.Message)
	assert.Nil(t, order.Shipment)
	assert.Equal(t, submitted.CorrelationToken, order.CorrelationToken)
	assert.Empty(t, f.shipping.requests())
	assert.Equal(t, []entities.Status{entities.StatusCreated, entities.StatusPaymentFailed}, f.statuses.of("o-1"))
}

func TestFlow_RedeliveryIsIdempotent(t *testing.T) {
	f := newFlow(t, 1000)
	ctx := context.Background()

	submitted, err := f.engine.Submit(ctx, newOrder("o-1", 1, 10))
	require.NoError(t, err)
	final := f.awaitTerminal(t, "o-1")

	require.NoError(t, f.engine.OnOrderChanged(ctx, entities.OrderChange{Order: final}))
	require.NoError(t, f.engine.OnOrderChanged(ctx, entities.OrderChange{Order: submitted}))

	again, err := f.store.Get(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, final, again)
	assert.Equal(t, 1, f.payment.count())
	assert.Len(t, f.shipping.requests(), 1)
}

func TestFlow_ManyOrders(t *testing.T) {
	f := newFlow(t, 30)
	ctx := context.Background()

	ids := []string{"o-1", "o-2", "o-3", "o-4", "o-5", "o-6", "o-7", "o-8"}
	for i, id := range ids {
		_, err := f.engine.Submit(ctx, newOrder(id, i%4+1, 10))
		require.NoError(t, err)
	}

	for i, id := range ids {
		order := f.awaitTerminal(t, id)
		seen := f.statuses.of(id)

		if order.Total > 30 {
			assert.Equal(t, entities.StatusPaymentFailed, order.Status, "items=%d", i%4+1)
			assert.Equal(t, []entities.Status{entities.StatusCreated, entities.StatusPaymentFailed}, seen)
			continue
		}
		assert.Equal(t, entities.StatusShipped, order.Status)
		assert.Equal(t, []entities.Status{entities.StatusCreated, entities.StatusPaid, entities.StatusShipped}, seen)
	}
}

func TestFlow_SpansJoinCorrelationTrace(t *testing.T) {
	f := newFlow(t, 1000)

	order := newOrder("o-1", 1, 10)
	order.CorrelationToken = token
	_, err := f.engine.Submit(context.Background(), order)
	require.NoError(t, err)
	f.awaitTerminal(t, "o-1")

	sc, err := correlation.Parse(token)
	require.NoError(t, err)

	var spans []sdktrace.ReadOnlySpan
	require.Eventually(t, func() bool {
		spans = f.spans.Ended()
		return len(spans) == 2
	}, time.Second, 5*time.Millisecond)

	next := map[entities.Status]string{}
	for _, s := range spans {
		assert.Equal(t, "process-order-event", s.Name())
		assert.Equal(t, trace.SpanKindConsumer, s.SpanKind())
		assert.Equal(t, sc.TraceID(), s.SpanContext().TraceID())
		assert.Equal(t, sc.SpanID(), s.Parent().SpanID())
		assert.True(t, s.Parent().IsRemote())

		attrs := map[attribute.Key]attribute.Value{}
		for _, kv := range s.Attributes() {
			attrs[kv.Key] = kv.Value
		}
		assert.Equal(t, "o-1", attrs["order.id"].AsString())
		next[entities.Status(attrs["order.status"].AsString())] = attrs["order.next_status"].AsString()
	}

	assert.Equal(t, map[entities.Status]string{
		entities.StatusCreated: string(entities.StatusPaid),
		entities.StatusPaid:    string(entities.StatusShipped),
	}, next)
}
