// Package wire holds the JSON documents exchanged between the services and
// stored in JSONB columns and change-feed messages.
package wire

import (
	"fmt"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
)

// DateLayout is the layout of calendar dates such as delivery dates.
const DateLayout = "2006-01-02"

// IdempotencyKeyHeader carries the key under which a payment authorization is deduplicated.
const IdempotencyKeyHeader = "Idempotency-Key"

type Customer struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Username  string `json:"username,omitempty"`
}

type Address struct {
	Number   string `json:"number,omitempty"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

type Card struct {
	LongNum string `json:"longNum" validate:"required"`
	Expires string `json:"expires" validate:"required"`
	CCV     string `json:"ccv" validate:"required"`
}

type Item struct {
	ItemID    string  `json:"itemId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

type Payment struct {
	Authorised bool   `json:"authorised"`
	Message    string `json:"message"`
}

type Shipment struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	DeliveryDate   string `json:"deliveryDate"`
}

type Order struct {
	OrderID          string    `json:"orderId"`
	Customer         Customer  `json:"customer"`
	Address          Address   `json:"address"`
	Card             Card      `json:"card"`
	Items            []Item    `json:"items"`
	Total            float64   `json:"total"`
	Date             time.Time `json:"date"`
	Status           string    `json:"status"`
	Payment          *Payment  `json:"payment,omitempty"`
	Shipment         *Shipment `json:"shipment,omitempty"`
	CorrelationToken string    `json:"correlationToken"`
	Version          int64     `json:"version"`
}

type PaymentRequest struct {
	OrderID  string   `json:"orderId" validate:"required"`
	Customer Customer `json:"customer"`
	Address  Address  `json:"address"`
	Card     Card     `json:"card"`
	Amount   float64  `json:"amount"`
}

type ShippingRequest struct {
	OrderID   string   `json:"orderId" validate:"required"`
	Customer  Customer `json:"customer"`
	Address   Address  `json:"address"`
	ItemCount int      `json:"itemCount" validate:"gte=0"`
}

func FromCustomer(c entities.Customer) Customer {
	return Customer{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Username: c.Username}
}

func (c Customer) Entity() entities.Customer {
	return entities.Customer{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Username: c.Username}
}

func FromAddress(a entities.Address) Address {
	return Address{Number: a.Number, Street: a.Street, City: a.City, Postcode: a.Postcode, Country: a.Country}
}

func (a Address) Entity() entities.Address {
	return entities.Address{Number: a.Number, Street: a.Street, City: a.City, Postcode: a.Postcode, Country: a.Country}
}

func FromCard(c entities.Card) Card {
	return Card{LongNum: c.LongNum, Expires: c.Expires, CCV: c.CCV}
}

func (c Card) Entity() entities.Card {
	return entities.Card{LongNum: c.LongNum, Expires: c.Expires, CCV: c.CCV}
}

func FromItems(items []entities.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Item{ItemID: it.ItemID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return out
}

func ItemsEntity(items []Item) []entities.Item {
	out := make([]entities.Item, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Item{ItemID: it.ItemID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return out
}

func FromPayment(p entities.Payment) Payment {
	return Payment{Authorised: p.Authorised, Message: p.Message}
}

func (p Payment) Entity() entities.Payment {
	return entities.Payment{Authorised: p.Authorised, Message: p.Message}
}

func FromShipment(s entities.Shipment) Shipment {
	return Shipment{
		Carrier:        s.Carrier,
		TrackingNumber: s.TrackingNumber,
		DeliveryDate:   s.DeliveryDate.Format(DateLayout),
	}
}

func (s Shipment) Entity() (entities.Shipment, error) {
	date, err := time.Parse(DateLayout, s.DeliveryDate)
	if err != nil {
		return entities.Shipment{}, fmt.Errorf("invalid delivery date %q: %w", s.DeliveryDate, err)
	}
	return entities.Shipment{Carrier: s.Carrier, TrackingNumber: s.TrackingNumber, DeliveryDate: date}, nil
}

func FromOrder(o entities.Order) Order {
	out := Order{
		OrderID:          o.OrderID,
		Customer:         FromCustomer(o.Customer),
		Address:          FromAddress(o.Address),
		Card:             FromCard(o.Card),
		Items:            FromItems(o.Items),
		Total:            o.Total,
		Date:             o.Date,
		Status:           string(o.Status),
		CorrelationToken: o.CorrelationToken,
		Version:          o.Version,
	}
	if o.Payment != nil {
		p := FromPayment(*o.Payment)
		out.Payment = &p
	}
	if o.Shipment != nil {
		s := FromShipment(*o.Shipment)
		out.Shipment = &s
	}
	return out
}

func (o Order) Entity() (entities.Order, error) {
	out := entities.Order{
		OrderID:          o.OrderID,
		Customer:         o.Customer.Entity(),
		Address:          o.Address.Entity(),
		Card:             o.Card.Entity(),
		Items:            ItemsEntity(o.Items),
		Total:            o.Total,
		Date:             o.Date,
		Status:           entities.Status(o.Status),
		CorrelationToken: o.CorrelationToken,
		Version:          o.Version,
	}
	if !out.Status.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidOrder, o.Status)
	}
	if o.Payment != nil {
		p := o.Payment.Entity()
		out.Payment = &p
	}
	if o.Shipment != nil {
		s, err := o.Shipment.Entity()
		if err != nil {
			return entities.Order{}, err
		}
		out.Shipment = &s
	}
	return out, nil
}

func FromPaymentRequest(r entities.PaymentRequest) PaymentRequest {
	return PaymentRequest{
		OrderID:  r.OrderID,
		Customer: FromCustomer(r.Customer),
		Address:  FromAddress(r.Address),
		Card:     FromCard(r.Card),
		Amount:   r.Amount,
	}
}

// Entity converts r; token and idempotency key travel as headers.
func (r PaymentRequest) Entity(token, idempotencyKey string) entities.PaymentRequest {
	return entities.PaymentRequest{
		OrderID:          r.OrderID,
		Customer:         r.Customer.Entity(),
		Address:          r.Address.Entity(),
		Card:             r.Card.Entity(),
		Amount:           r.Amount,
		CorrelationToken: token,
		IdempotencyKey:   idempotencyKey,
	}
}

func FromShippingRequest(r entities.ShippingRequest) ShippingRequest {
	return ShippingRequest{
		OrderID:   r.OrderID,
		Customer:  FromCustomer(r.Customer),
		Address:   FromAddress(r.Address),
		ItemCount: r.ItemCount,
	}
}

func (r ShippingRequest) Entity(token string) entities.ShippingRequest {
	return entities.ShippingRequest{
		OrderID:          r.OrderID,
		Customer:         r.Customer.Entity(),
		Address:          r.Address.Entity(),
		ItemCount:        r.ItemCount,
		CorrelationToken: token,
	}
}
