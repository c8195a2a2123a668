package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/wire"
)

type ShippingClient struct {
	url    string
	client *http.Client
}

func NewShippingClient(cfg config.Service) *ShippingClient {
	return &ShippingClient{
		url:    strings.TrimRight(cfg.URL, "/") + "/shipping",
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *ShippingClient) Ship(ctx context.Context, req entities.ShippingRequest) (*entities.Shipment, error) {
	var res wire.Shipment
	if err := post(ctx, c.client, c.url, nil, req.CorrelationToken, wire.FromShippingRequest(req), &res); err != nil {
		return nil, err
	}

	s, err := res.Entity()
	if err != nil {
		return nil, err
	}
	return &s, nil
}
