package feed

import (
	"encoding/json"
	"fmt"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/wire"
)

type changeMessage struct {
	Order    wire.Order  `json:"order"`
	Previous *wire.Order `json:"previous,omitempty"`
}

// EncodeChange returns the change-feed payload of c.
func EncodeChange(c entities.OrderChange) ([]byte, error) {
	msg := changeMessage{Order: wire.FromOrder(c.Order)}
	if c.Previous != nil {
		prev := wire.FromOrder(*c.Previous)
		msg.Previous = &prev
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order change: %w", err)
	}
	return data, nil
}

func DecodeChange(data []byte) (entities.OrderChange, error) {
	var msg changeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return entities.OrderChange{}, fmt.Errorf("failed to unmarshal order change: %w", err)
	}

	order, err := msg.Order.Entity()
	if err != nil {
		return entities.OrderChange{}, err
	}
	if order.OrderID == "" {
		return entities.OrderChange{}, fmt.Errorf("%w: change without order id", entities.ErrInvalidOrder)
	}

	change := entities.OrderChange{Order: order}
	if msg.Previous != nil {
		prev, err := msg.Previous.Entity()
		if err != nil {
			return entities.OrderChange{}, err
		}
		change.Previous = &prev
	}
	return change, nil
}
