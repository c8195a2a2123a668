package saga

import (
	"errors"
	"fmt"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
)

// Effect is the side effect a change of an order calls for.
type Effect int

const (
	EffectNone Effect = iota
	EffectAuthorizePayment
	EffectShip
)

func (e Effect) String() string {
	switch e {
	case EffectAuthorizePayment:
		return "payment"
	case EffectShip:
		return "shipping"
	}
	return "none"
}

// UnparsablePayment is recorded when the payment service gives no usable answer.
const UnparsablePayment = "Unable to parse authorization packet"

var ErrInvalidShipment = errors.New("invalid shipment")

func NextEffect(o entities.Order) Effect {
	switch o.Status {
	case entities.StatusCreated:
		return EffectAuthorizePayment
	case entities.StatusPaid:
		return EffectShip
	}
	return EffectNone
}

// Result is the outcome of the effect returned by NextEffect.
type Result struct {
	Payment  *entities.Payment
	Shipment *entities.Shipment
}

// Advance folds r into o and returns the record to persist. A declined payment
// returns the PAYMENT_FAILED record together with a *entities.PaymentDeclinedError.
// On any other error o is returned unchanged.
func Advance(o entities.Order, r Result) (entities.Order, error) {
	next := o.Clone()

	switch NextEffect(o) {
	case EffectAuthorizePayment:
		p := entities.Payment{Message: UnparsablePayment}
		if r.Payment != nil && r.Payment.Valid() {
			p = *r.Payment
		}

		if p.Authorised {
			if err := next.MarkPaid(p); err != nil {
				return o, err
			}
			return next, nil
		}
		if err := next.MarkPaymentFailed(p); err != nil {
			return o, err
		}
		return next, &entities.PaymentDeclinedError{OrderID: o.OrderID, Reason: p.Message}

	case EffectShip:
		if r.Shipment == nil {
			return o, fmt.Errorf("%w: no shipment for order %s", ErrInvalidShipment, o.OrderID)
		}
		if err := next.MarkShipped(*r.Shipment); err != nil {
			return o, err
		}
		return next, nil
	}

	return o, fmt.Errorf("%w: order %s is %s", entities.ErrInvalidTransition, o.OrderID, o.Status)
}
