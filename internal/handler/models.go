package handler

import (
	"math"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/wire"
)

// ShippingFee is added to the item total of every order.
const ShippingFee = 4.99

// NewOrderRequest is the body of an order submission.
type NewOrderRequest struct {
	Customer wire.Customer `json:"customer" validate:"required"`
	Address  wire.Address  `json:"address" validate:"required"`
	Card     wire.Card     `json:"card" validate:"required"`
	Items    []wire.Item   `json:"items" validate:"required,min=1,dive"`
}

func (r NewOrderRequest) Entity(token string) entities.Order {
	items := wire.ItemsEntity(r.Items)
	return entities.Order{
		Customer:         r.Customer.Entity(),
		Address:          r.Address.Entity(),
		Card:             r.Card.Entity(),
		Items:            items,
		Total:            orderTotal(items),
		CorrelationToken: token,
	}
}

func orderTotal(items []entities.Item) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return math.Round((total+ShippingFee)*100) / 100
}

// OrderEntityToJSON is the API representation of an order.
func OrderEntityToJSON(o entities.Order) wire.Order {
	return wire.FromOrder(o)
}
