package entities

import (
	"context"
	"errors"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrShipmentNotFound      = errors.New("shipment not found")
	ErrAuthorizationNotFound = errors.New("authorization not found")

	ErrVersionConflict   = errors.New("order version conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidOrder      = errors.New("invalid order")
)

// PaymentDeclinedError is a business decline, not a system failure.
type PaymentDeclinedError struct {
	OrderID string
	Reason  string
}

func (e *PaymentDeclinedError) Error() string {
	return "payment declined for order " + e.OrderID + ": " + e.Reason
}

// ChangeHandler receives order change notifications.
type ChangeHandler func(ctx context.Context, change OrderChange) error
