// Package payment is the reference payment service. It authorizes every amount up
// to a configured limit and answers repeated requests with the stored result.
package payment

import (
	"fmt"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
)

const (
	MessageAuthorised    = "Payment authorised"
	MessageInvalidAmount = "Invalid payment amount"
)

type Authorizer struct {
	declineOver float64
}

func NewAuthorizer(declineOver float64) Authorizer {
	return Authorizer{declineOver: declineOver}
}

func (a Authorizer) Authorize(amount float64) entities.Payment {
	switch {
	case amount <= 0:
		return entities.Payment{Message: MessageInvalidAmount}
	case amount > a.declineOver:
		return entities.Payment{Message: fmt.Sprintf("Payment declined: amount exceeds %.2f", a.declineOver)}
	}
	return entities.Payment{Authorised: true, Message: MessageAuthorised}
}
