package payment_test

import (
	"testing"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/payment"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizer_Authorize(t *testing.T) {
	a := payment.NewAuthorizer(105)

	testCases := []struct {
		name   string
		amount float64
		want   entities.Payment
	}{
		{name: "zero", amount: 0, want: entities.Payment{Message: "Invalid payment amount"}},
		{name: "negative", amount: -3, want: entities.Payment{Message: "Invalid payment amount"}},
		{name: "within limit", amount: 50, want: entities.Payment{Authorised: true, Message: "Payment authorised"}},
		{name: "at limit", amount: 105, want: entities.Payment{Authorised: true, Message: "Payment authorised"}},
		{name: "over limit", amount: 105.01, want: entities.Payment{Message: "Payment declined: amount exceeds 105.00"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Authorize(tc.amount))
		})
	}
}
