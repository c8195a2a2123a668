package repo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/wire"
)

type Order struct {
	OrderID          string    `db:"order_id"`
	CustomerID       string    `db:"customer_id"`
	Customer         []byte    `db:"customer"`
	Address          []byte    `db:"address"`
	Card             []byte    `db:"card"`
	Items            []byte    `db:"items"`
	Total            float64   `db:"total"`
	DateCreated      time.Time `db:"date_created"`
	Status           string    `db:"status"`
	Payment          []byte    `db:"payment"`
	Shipment         []byte    `db:"shipment"`
	CorrelationToken string    `db:"correlation_token"`
	Version          int64     `db:"version"`
}

// Change is an outbox row.
type Change struct {
	ID               int64  `db:"id"`
	OrderID          string `db:"order_id"`
	Version          int64  `db:"version"`
	CorrelationToken string `db:"correlation_token"`
	Payload          []byte `db:"payload"`
}

var orderColumns = []string{
	"order_id", "customer_id", "customer", "address", "card", "items", "total",
	"date_created", "status", "payment", "shipment", "correlation_token", "version",
}

func OrderFromEntity(o entities.Order) (Order, error) {
	doc := wire.FromOrder(o)

	row := Order{
		OrderID:          o.OrderID,
		CustomerID:       o.Customer.ID,
		Total:            o.Total,
		DateCreated:      o.Date,
		Status:           string(o.Status),
		CorrelationToken: o.CorrelationToken,
		Version:          o.Version,
	}

	var err error
	if row.Customer, err = json.Marshal(doc.Customer); err != nil {
		return Order{}, fmt.Errorf("marshal customer: %w", err)
	}
	if row.Address, err = json.Marshal(doc.Address); err != nil {
		return Order{}, fmt.Errorf("marshal address: %w", err)
	}
	if row.Card, err = json.Marshal(doc.Card); err != nil {
		return Order{}, fmt.Errorf("marshal card: %w", err)
	}
	if row.Items, err = json.Marshal(doc.Items); err != nil {
		return Order{}, fmt.Errorf("marshal items: %w", err)
	}
	if doc.Payment != nil {
		if row.Payment, err = json.Marshal(doc.Payment); err != nil {
			return Order{}, fmt.Errorf("marshal payment: %w", err)
		}
	}
	if doc.Shipment != nil {
		if row.Shipment, err = json.Marshal(doc.Shipment); err != nil {
			return Order{}, fmt.Errorf("marshal shipment: %w", err)
		}
	}
	return row, nil
}

func OrderToEntity(row Order) (entities.Order, error) {
	doc := wire.Order{
		OrderID:          row.OrderID,
		Total:            row.Total,
		Date:             row.DateCreated,
		Status:           row.Status,
		CorrelationToken: row.CorrelationToken,
		Version:          row.Version,
	}

	fields := []struct {
		name string
		src  []byte
		dst  any
	}{
		{"customer", row.Customer, &doc.Customer},
		{"address", row.Address, &doc.Address},
		{"card", row.Card, &doc.Card},
		{"items", row.Items, &doc.Items},
		{"payment", row.Payment, &doc.Payment},
		{"shipment", row.Shipment, &doc.Shipment},
	}
	for _, f := range fields {
		if len(f.src) == 0 {
			continue
		}
		if err := json.Unmarshal(f.src, f.dst); err != nil {
			return entities.Order{}, fmt.Errorf("unmarshal %s of order %s: %w", f.name, row.OrderID, err)
		}
	}

	return doc.Entity()
}
