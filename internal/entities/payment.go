package entities

import "time"

type Payment struct {
	Authorised bool
	Message    string
}

// Valid reports whether p is a usable authorization answer.
func (p Payment) Valid() bool {
	return p.Authorised || p.Message != ""
}

type PaymentRequest struct {
	OrderID          string
	Customer         Customer
	Address          Address
	Card             Card
	Amount           float64
	CorrelationToken string
	IdempotencyKey   string
}

// Authorization is the payment service record of one authorize call.
type Authorization struct {
	OrderID        string
	IdempotencyKey string
	Payment        Payment
	Time           time.Time
}
