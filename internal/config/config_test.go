package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrders_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "orders")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	c := NewOrders()

	assert.Equal(t, "postgres", c.Store.Driver)
	assert.Equal(t, "order-changes", c.Kafka.Topic)
	assert.Equal(t, []string{"localhost:9092"}, c.Kafka.Brokers)
	assert.Equal(t, 10*time.Second, c.Saga.PaymentTimeout)
	require.NoError(t, c.Validate())
}

func TestNewOrders_MemoryStoreSkipsPostgres(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("GUARD_DRIVER", "memory")
	t.Setenv("POSTGRES_USER", "")

	c := NewOrders()
	require.NoError(t, c.Validate())
}

func TestNewOrders_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "postgres store without credentials",
			env:  map[string]string{"STORE_DRIVER": "postgres", "POSTGRES_USER": ""},
		},
		{
			name: "unknown store",
			env:  map[string]string{"STORE_DRIVER": "coherence", "GUARD_DRIVER": "memory"},
		},
		{
			name: "zero saga timeout",
			env:  map[string]string{"STORE_DRIVER": "memory", "GUARD_DRIVER": "memory", "SAGA_SHIPPING_TIMEOUT": "0s"},
		},
		{
			name: "bad payment url",
			env:  map[string]string{"STORE_DRIVER": "memory", "GUARD_DRIVER": "memory", "PAYMENT_URL": "::"},
		},
		{
			name: "bad redis address",
			env:  map[string]string{"STORE_DRIVER": "memory", "REDIS_ADDR": "redis"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, NewOrders().Validate())
		})
	}
}

func TestNewPayment(t *testing.T) {
	t.Setenv("POSTGRES_USER", "payment")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("PAYMENT_DECLINE_OVER", "250.5")

	c := NewPayment()
	assert.Equal(t, 250.5, c.DeclineOver)
	assert.Equal(t, "payment", c.Postgres.DBName)
	require.NoError(t, c.Validate())
}

func TestNewShipping(t *testing.T) {
	t.Setenv("POSTGRES_USER", "shipping")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("PORT", "9090")

	c := NewShipping()
	assert.Equal(t, "9090", c.Http.Port)
	assert.Equal(t, "shipping", c.Postgres.DBName)
	assert.Equal(t, []string{"http://localhost:3000"}, c.Cors.AllowedOrigins)
	require.NoError(t, c.Validate())
}

func TestNewLoadgen(t *testing.T) {
	t.Setenv("LOADGEN_INTERVAL", "250ms")

	c := NewLoadgen()
	assert.Equal(t, 250*time.Millisecond, c.Interval)
	assert.Equal(t, "http://localhost:8080", c.Orders.URL)
	require.NoError(t, c.Validate())

	t.Setenv("ORDERS_URL", "not a url")
	assert.Error(t, NewLoadgen().Validate())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "x")
	t.Setenv("SOME_DURATION", "3s")

	assert.Equal(t, 7, envInt("SOME_INT", 7))
	assert.Equal(t, 3*time.Second, envDuration("SOME_DURATION", time.Second))
	assert.Equal(t, "fallback", env("MISSING_KEY_FOR_TEST", "fallback"))
}
