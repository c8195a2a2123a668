package entities

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusCreated       Status = "CREATED"
	StatusPaid          Status = "PAID"
	StatusPaymentFailed Status = "PAYMENT_FAILED"
	StatusShipped       Status = "SHIPPED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusPaid, StatusPaymentFailed, StatusShipped:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusPaymentFailed || s == StatusShipped
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusCreated:
		return next == StatusPaid || next == StatusPaymentFailed
	case StatusPaid:
		return next == StatusShipped
	}
	return false
}

type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Username  string
}

type Address struct {
	Number   string
	Street   string
	City     string
	Postcode string
	Country  string
}

type Card struct {
	LongNum string
	Expires string
	CCV     string
}

type Item struct {
	ItemID    string
	Quantity  int
	UnitPrice float64
}

type Order struct {
	OrderID  string
	Customer Customer
	Address  Address
	Card     Card
	Items    []Item
	Total    float64
	Date     time.Time

	Status   Status
	Payment  *Payment
	Shipment *Shipment

	// CorrelationToken is set once at submission and carried unchanged by every stage.
	CorrelationToken string

	// Version is assigned by the store: 0 until the first write, then incremented on every write.
	Version int64
}

func (o *Order) MarkPaid(p Payment) error {
	if err := o.transition(StatusPaid); err != nil {
		return err
	}
	o.Payment = &p
	return nil
}

func (o *Order) MarkPaymentFailed(p Payment) error {
	if err := o.transition(StatusPaymentFailed); err != nil {
		return err
	}
	o.Payment = &p
	return nil
}

func (o *Order) MarkShipped(s Shipment) error {
	if err := o.transition(StatusShipped); err != nil {
		return err
	}
	o.Shipment = &s
	return nil
}

func (o *Order) transition(next Status) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	return nil
}

// Clone returns a copy that shares no mutable state with o.
func (o Order) Clone() Order {
	c := o
	if o.Items != nil {
		c.Items = append([]Item(nil), o.Items...)
	}
	if o.Payment != nil {
		p := *o.Payment
		c.Payment = &p
	}
	if o.Shipment != nil {
		s := *o.Shipment
		c.Shipment = &s
	}
	return c
}

// CheckWrite validates replacing prev (nil when absent) with next.
func CheckWrite(prev *Order, next Order) error {
	if next.OrderID == "" {
		return fmt.Errorf("%w: empty order id", ErrInvalidOrder)
	}
	if !next.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidOrder, next.Status)
	}

	if prev == nil {
		if next.Version != 0 {
			return fmt.Errorf("%w: order %s does not exist", ErrVersionConflict, next.OrderID)
		}
		if next.Status != StatusCreated {
			return fmt.Errorf("%w: new order in status %s", ErrInvalidTransition, next.Status)
		}
		return nil
	}

	if next.Version != prev.Version {
		return fmt.Errorf("%w: order %s stored at %d, written at %d",
			ErrVersionConflict, next.OrderID, prev.Version, next.Version)
	}
	if next.Status != prev.Status && !prev.Status.CanTransitionTo(next.Status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, prev.Status, next.Status)
	}
	return nil
}

type OrderChange struct {
	Order Order

	// Previous is nil for inserts.
	Previous *Order
}

func (c OrderChange) Clone() OrderChange {
	out := OrderChange{Order: c.Order.Clone()}
	if c.Previous != nil {
		prev := c.Previous.Clone()
		out.Previous = &prev
	}
	return out
}
