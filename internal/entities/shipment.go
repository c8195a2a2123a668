package entities

import "time"

type Shipment struct {
	Carrier        string
	TrackingNumber string
	DeliveryDate   time.Time
}

type ShippingRequest struct {
	OrderID          string
	Customer         Customer
	Address          Address
	ItemCount        int
	CorrelationToken string
}

// ShipmentRecord is the shipping service record of a dispatched order.
type ShipmentRecord struct {
	OrderID string
	Shipment
}
