package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/client"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const token = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

func TestPaymentClient_Authorize(t *testing.T) {
	var got wire.PaymentRequest
	var headers http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/authorize", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		headers = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"orderId":"o-1","authorised":false,"message":"insufficient funds"}`))
	}))
	defer srv.Close()

	c := client.NewPaymentClient(config.Service{URL: srv.URL + "/", Timeout: time.Second})

	p, err := c.Authorize(context.Background(), entities.PaymentRequest{
		OrderID:          "o-1",
		Customer:         entities.Customer{FirstName: "Ada", LastName: "Lovelace"},
		Card:             entities.Card{LongNum: "4111"},
		Amount:           24.99,
		CorrelationToken: token,
		IdempotencyKey:   "o-1/1",
	})

	require.NoError(t, err)
	assert.Equal(t, &entities.Payment{Message: "insufficient funds"}, p)
	assert.Equal(t, "o-1", got.OrderID)
	assert.Equal(t, 24.99, got.Amount)
	assert.Equal(t, "4111", got.Card.LongNum)
	assert.Equal(t, token, headers.Get("traceparent"))
	assert.Equal(t, "o-1/1", headers.Get("Idempotency-Key"))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
}

func TestPaymentClient_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte("<html>"))
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := client.NewPaymentClient(config.Service{URL: srv.URL, Timeout: 100 * time.Millisecond})

			p, err := c.Authorize(context.Background(), entities.PaymentRequest{OrderID: "o-1"})
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestPaymentClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := client.NewPaymentClient(config.Service{URL: srv.URL, Timeout: time.Second}).
		Authorize(context.Background(), entities.PaymentRequest{OrderID: "o-1"})

	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "unavailable", statusErr.Body)
}

func TestShippingClient_Ship(t *testing.T) {
	var got wire.ShippingRequest
	var traceparent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipping", r.URL.Path)
		traceparent = r.Header.Get("traceparent")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"orderId":"o-1","carrier":"UPS","trackingNumber":"1Z999AA10123456784","deliveryDate":"2024-05-04"}`))
	}))
	defer srv.Close()

	c := client.NewShippingClient(config.Service{URL: srv.URL, Timeout: time.Second})

	s, err := c.Ship(context.Background(), entities.ShippingRequest{OrderID: "o-1", ItemCount: 2, CorrelationToken: token})

	require.NoError(t, err)
	assert.Equal(t, &entities.Shipment{
		Carrier:        "UPS",
		TrackingNumber: "1Z999AA10123456784",
		DeliveryDate:   time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
	}, s)
	assert.Equal(t, 2, got.ItemCount)
	assert.Equal(t, token, traceparent)
}

func TestShippingClient_InvalidDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"carrier":"UPS","deliveryDate":"soon"}`))
	}))
	defer srv.Close()

	s, err := client.NewShippingClient(config.Service{URL: srv.URL, Timeout: time.Second}).
		Ship(context.Background(), entities.ShippingRequest{OrderID: "o-1"})

	assert.Error(t, err)
	assert.Nil(t, s)
}
