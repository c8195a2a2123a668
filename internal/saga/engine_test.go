package saga_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/correlation"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/saga"
	mocks "github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/saga/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const token = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

var sagaConfig = config.Saga{PaymentTimeout: time.Second, ShippingTimeout: time.Second}

type deps struct {
	store    *mocks.MockOrderStore
	payment  *mocks.MockPaymentClient
	shipping *mocks.MockShippingClient
	guard    *mocks.MockGuard
}

func newEngine(t *testing.T, opts ...saga.Option) (*saga.Engine, deps) {
	t.Helper()
	d := deps{
		store:    mocks.NewMockOrderStore(t),
		payment:  mocks.NewMockPaymentClient(t),
		shipping: mocks.NewMockShippingClient(t),
		guard:    mocks.NewMockGuard(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return saga.New(logger, sagaConfig, d.store, d.payment, d.shipping, d.guard, opts...), d
}

func createdOrder() entities.Order {
	return entities.Order{
		OrderID:          "o-1",
		Customer:         entities.Customer{ID: "c-1", FirstName: "Ada", LastName: "Lovelace"},
		Address:          entities.Address{Street: "1 Main St", City: "London", Postcode: "N1", Country: "UK"},
		Card:             entities.Card{LongNum: "4111111111111111", Expires: "12/30", CCV: "123"},
		Items:            []entities.Item{{ItemID: "a", Quantity: 1, UnitPrice: 20}, {ItemID: "b", Quantity: 1, UnitPrice: 5}},
		Total:            29.99,
		Date:             time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Status:           entities.StatusCreated,
		CorrelationToken: token,
		Version:          1,
	}
}

func paidOrder() entities.Order {
	o := createdOrder()
	o.Status = entities.StatusPaid
	o.Payment = &entities.Payment{Authorised: true, Message: "Payment authorised"}
	o.Version = 2
	return o
}

func TestEngine_Start(t *testing.T) {
	e, d := newEngine(t)
	d.store.EXPECT().Subscribe(mock.Anything).Once()

	require.NoError(t, e.Start(context.Background()))
}

func TestEngine_Submit(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	t.Run("defaults", func(t *testing.T) {
		e, d := newEngine(t, saga.WithClock(func() time.Time { return now }))

		order := createdOrder()
		order.OrderID = ""
		order.Date = time.Time{}
		order.Status = ""
		order.CorrelationToken = ""
		order.Version = 7

		d.store.EXPECT().
			Put(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
				return o.OrderID != "" &&
					o.Status == entities.StatusCreated &&
					o.Date.Equal(now) && o.Date.Location() == time.UTC &&
					correlation.Valid(o.CorrelationToken) &&
					o.Version == 0
			})).
			Return(nil).Once()

		got, err := e.Submit(context.Background(), order)
		require.NoError(t, err)
		assert.NotEmpty(t, got.OrderID)
		assert.Equal(t, entities.StatusCreated, got.Status)
		assert.Equal(t, int64(1), got.Version)
		assert.True(t, correlation.Valid(got.CorrelationToken))
	})

	t.Run("keeps valid token", func(t *testing.T) {
		e, d := newEngine(t)

		order := createdOrder()
		order.Version = 0
		d.store.EXPECT().
			Put(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
				return o.OrderID == "o-1" && o.CorrelationToken == token
			})).
			Return(nil).Once()

		got, err := e.Submit(context.Background(), order)
		require.NoError(t, err)
		assert.Equal(t, token, got.CorrelationToken)
		assert.Equal(t, order.Date, got.Date)
	})

	t.Run("replaces malformed token", func(t *testing.T) {
		e, d := newEngine(t)

		order := createdOrder()
		order.CorrelationToken = "garbage"
		d.store.EXPECT().
			Put(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
				return o.CorrelationToken != "garbage" && correlation.Valid(o.CorrelationToken)
			})).
			Return(nil).Once()

		_, err := e.Submit(context.Background(), order)
		require.NoError(t, err)
	})

	t.Run("rejects order past CREATED", func(t *testing.T) {
		e, _ := newEngine(t)

		_, err := e.Submit(context.Background(), paidOrder())
		assert.ErrorIs(t, err, entities.ErrInvalidOrder)
	})

	t.Run("store error", func(t *testing.T) {
		e, d := newEngine(t)
		d.store.EXPECT().Put(mock.Anything, mock.Anything).Return(entities.ErrVersionConflict).Once()

		_, err := e.Submit(context.Background(), createdOrder())
		assert.ErrorIs(t, err, entities.ErrVersionConflict)
	})
}

func TestEngine_OnOrderChanged_Terminal(t *testing.T) {
	for _, status := range []entities.Status{entities.StatusPaymentFailed, entities.StatusShipped} {
		t.Run(string(status), func(t *testing.T) {
			e, _ := newEngine(t)

			order := createdOrder()
			order.Status = status
			require.NoError(t, e.OnOrderChanged(context.Background(), entities.OrderChange{Order: order}))
		})
	}
}

func TestEngine_OnOrderChanged_Duplicate(t *testing.T) {
	e, d := newEngine(t)
	d.guard.EXPECT().Claim(mock.Anything, "o-1/1/payment").Return(false, nil).Once()

	require.NoError(t, e.OnOrderChanged(context.Background(), entities.OrderChange{Order: createdOrder()}))
}

func TestEngine_OnOrderChanged_ClaimError(t *testing.T) {
	e, d := newEngine(t)
	d.guard.EXPECT().Claim(mock.Anything, "o-1/1/payment").Return(false, errors.New("redis down")).Once()

	err := e.OnOrderChanged(context.Background(), entities.OrderChange{Order: createdOrder()})
	assert.ErrorContains(t, err, "redis down")
}

func TestEngine_OnOrderChanged_Payment(t *testing.T) {
	testCases := []struct {
		name        string
		payment     *entities.Payment
		paymentErr  error
		wantStatus  entities.Status
		wantPayment entities.Payment
	}{
		{
			name:        "authorised",
			payment:     &entities.Payment{Authorised: true, Message: "Payment authorised"},
			wantStatus:  entities.StatusPaid,
			wantPayment: entities.Payment{Authorised: true, Message: "Payment authorised"},
		},
		{
			name:        "declined",
			payment:     &entities.Payment{Message: "insufficient funds"},
			wantStatus:  entities.StatusPaymentFailed,
			wantPayment: entities.Payment{Message: "insufficient funds"},
		},
		{
			name:        "unusable answer",
			payment:     &entities.Payment{},
			wantStatus:  entities.StatusPaymentFailed,
			wantPayment: entities.Payment{Message: saga.UnparsablePayment},
		},
		{
			name:        "service unavailable",
			paymentErr:  errors.New("connection refused"),
			wantStatus:  entities.StatusPaymentFailed,
			wantPayment: entities.Payment{Message: saga.PaymentUnavailable},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, d := newEngine(t)
			order := createdOrder()

			d.guard.EXPECT().Claim(mock.Anything, "o-1/1/payment").Return(true, nil).Once()
			d.payment.EXPECT().
				Authorize(mock.Anything, mock.MatchedBy(func(r entities.PaymentRequest) bool {
					return r.OrderID == "o-1" &&
						r.Amount == 29.99 &&
						r.Card == order.Card &&
						r.Customer == order.Customer &&
						r.CorrelationToken == token &&
						r.IdempotencyKey == "o-1/1"
				})).
				Return(tc.payment, tc.paymentErr).Once()
			d.store.EXPECT().
				Put(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == tc.wantStatus &&
						o.Payment != nil && *o.Payment == tc.wantPayment &&
						o.Shipment == nil &&
						o.Version == 1 &&
						o.CorrelationToken == token
				})).
				Return(nil).Once()

			require.NoError(t, e.OnOrderChanged(context.Background(), entities.OrderChange{Order: order}))
		})
	}
}

func TestEngine_OnOrderChanged_PaymentAborted(t *testing.T) {
	e, d := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d.guard.EXPECT().Claim(mock.Anything, "o-1/1/payment").Return(true, nil).Once()
	d.payment.EXPECT().Authorize(mock.Anything, mock.Anything).
		RunAndReturn(func(rctx context.Context, _ entities.PaymentRequest) (*entities.Payment, error) {
			cancel()
			<-rctx.Done()
			return nil, rctx.Err()
		}).Once()
	d.guard.EXPECT().
		Release(mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), "o-1/1/payment").
		Return(nil).Once()

	err := e.OnOrderChanged(ctx, entities.OrderChange{Order: createdOrder()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_OnOrderChanged_Ship(t *testing.T) {
	e, d := newEngine(t)
	order := paidOrder()
	shipment := &entities.Shipment{Carrier: "UPS", TrackingNumber: "1Z999AA10123456784", DeliveryDate: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)}

	d.guard.EXPECT().Claim(mock.Anything, "o-1/2/shipping").Return(true, nil).Once()
	d.shipping.EXPECT().
		Ship(mock.Anything, mock.MatchedBy(func(r entities.ShippingRequest) bool {
			return r.OrderID == "o-1" &&
				r.ItemCount == 2 &&
				r.Address == order.Address &&
				r.CorrelationToken == token
		})).
		Return(shipment, nil).Once()
	d.store.EXPECT().
		Put(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
			return o.Status == entities.StatusShipped &&
				o.Shipment != nil && *o.Shipment == *shipment &&
				o.Payment != nil && o.Payment.Authorised &&
				o.Version == 2
		})).
		Return(nil).Once()

	require.NoError(t, e.OnOrderChanged(context.Background(), entities.OrderChange{Order: order}))
}

func TestEngine_OnOrderChanged_ShipFailure(t *testing.T) {
	testCases := []struct {
		name     string
		shipment *entities.Shipment
		err      error
		wantErr  string
	}{
		{name: "service error", err: errors.New("503"), wantErr: "503"},
		{name: "no shipment", wantErr: saga.ErrInvalidShipment.Error()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, d := newEngine(t)

			d.guard.EXPECT().Claim(mock.Anything, "o-1/2/shipping").Return(true, nil).Once()
			d.shipping.EXPECT().Ship(mock.Anything, mock.Anything).Return(tc.shipment, tc.err).Once()
			d.guard.EXPECT().Release(mock.Anything, "o-1/2/shipping").Return(nil).Once()

			err := e.OnOrderChanged(context.Background(), entities.OrderChange{Order: paidOrder()})
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestEngine_OnOrderChanged_PersistFailure(t *testing.T) {
	t.Run("version conflict", func(t *testing.T) {
		e, d := newEngine(t)

		d.guard.EXPECT().Claim(mock.Anything, "o-1/1/payment").Return(true, nil).Once()
		d.payment.EXPECT().Authorize(mock.Anything, mock.Anything).
			Return(&entities.Payment{Authorised: true, Message: "ok"}, nil).Once()
		d.store.EXPECT().Put(mock.Anything, mock.Anything).Return(entities.ErrVersionConflict).Once()

		require.NoError(t, e.OnOrderChanged(context.Background(), entities.OrderChange{Order: createdOrder()}))
	})

	t.Run("store error", func(t *testing.T) {
		e, d := newEngine(t)

		d.guard.EXPECT().Claim(mock.Anything, "o-1/1/payment").Return(true, nil).Once()
		d.payment.EXPECT().Authorize(mock.Anything, mock.Anything).
			Return(&entities.Payment{Authorised: true, Message: "ok"}, nil).Once()
		d.store.EXPECT().Put(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
		d.guard.EXPECT().Release(mock.Anything, "o-1/1/payment").Return(nil).Once()

		err := e.OnOrderChanged(context.Background(), entities.OrderChange{Order: createdOrder()})
		assert.ErrorContains(t, err, "db down")
	})
}
