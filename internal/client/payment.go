package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/wire"
)

type PaymentClient struct {
	url    string
	client *http.Client
}

func NewPaymentClient(cfg config.Service) *PaymentClient {
	return &PaymentClient{
		url:    strings.TrimRight(cfg.URL, "/") + "/payments/authorize",
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *PaymentClient) Authorize(ctx context.Context, req entities.PaymentRequest) (*entities.Payment, error) {
	headers := http.Header{}
	if req.IdempotencyKey != "" {
		headers.Set(wire.IdempotencyKeyHeader, req.IdempotencyKey)
	}

	var res wire.Payment
	if err := post(ctx, c.client, c.url, headers, req.CorrelationToken, wire.FromPaymentRequest(req), &res); err != nil {
		return nil, err
	}

	p := res.Entity()
	return &p, nil
}
