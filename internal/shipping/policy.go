// Package shipping is the reference shipping service: it picks a carrier for an
// order by its item count and keeps one shipment per order.
package shipping

import (
	"context"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
)

const (
	CarrierFedEx = "FEDEX"
	CarrierUPS   = "UPS"
	CarrierUSPS  = "USPS"

	TrackingFedEx = "231300687629630"
	TrackingUPS   = "1Z999AA10123456784"
	TrackingUSPS  = "9205 5000 0000 0000 0000 00"
)

// Select returns the shipment of an order with itemCount items dispatched on from.
// The delivery date is a calendar date in UTC.
func Select(itemCount int, from time.Time) entities.Shipment {
	switch {
	case itemCount == 1:
		return entities.Shipment{Carrier: CarrierFedEx, TrackingNumber: TrackingFedEx, DeliveryDate: addDays(from, 1)}
	case itemCount >= 2 && itemCount <= 3:
		return entities.Shipment{Carrier: CarrierUPS, TrackingNumber: TrackingUPS, DeliveryDate: addDays(from, 3)}
	default:
		return entities.Shipment{Carrier: CarrierUSPS, TrackingNumber: TrackingUSPS, DeliveryDate: addDays(from, 5)}
	}
}

func addDays(t time.Time, days int) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day()+days, 0, 0, 0, 0, time.UTC)
}

// ReferenceClient applies Select in process instead of calling the shipping service.
type ReferenceClient struct {
	now func() time.Time
}

func NewReferenceClient(now func() time.Time) *ReferenceClient {
	if now == nil {
		now = time.Now
	}
	return &ReferenceClient{now: now}
}

func (c *ReferenceClient) Ship(ctx context.Context, req entities.ShippingRequest) (*entities.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := Select(req.ItemCount, c.now())
	return &s, nil
}
