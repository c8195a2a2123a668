package shipping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
)

type Repo interface {
	GetShipment(ctx context.Context, orderID string) (entities.ShipmentRecord, error)

	// SaveShipment returns the stored record, which is the existing one when the
	// order was already shipped.
	SaveShipment(ctx context.Context, r entities.ShipmentRecord) (entities.ShipmentRecord, error)
}

type service struct {
	logger *slog.Logger
	repo   Repo
	now    func() time.Time
}

func NewService(logger *slog.Logger, repo Repo) *service {
	return &service{
		logger: logger.With(slog.String("service", "shipping")),
		repo:   repo,
		now:    time.Now,
	}
}

// Ship dispatches the order once; repeated requests get the first shipment back.
func (s *service) Ship(ctx context.Context, req entities.ShippingRequest) (entities.ShipmentRecord, error) {
	existing, err := s.repo.GetShipment(ctx, req.OrderID)
	if err == nil {
		s.logger.InfoContext(ctx, "order already shipped",
			slog.String("order_id", req.OrderID),
			slog.String("correlation_token", req.CorrelationToken),
		)
		return existing, nil
	}
	if !errors.Is(err, entities.ErrShipmentNotFound) {
		return entities.ShipmentRecord{}, fmt.Errorf("failed to get shipment: %w", err)
	}

	record, err := s.repo.SaveShipment(ctx, entities.ShipmentRecord{
		OrderID:  req.OrderID,
		Shipment: Select(req.ItemCount, s.now()),
	})
	if err != nil {
		return entities.ShipmentRecord{}, fmt.Errorf("failed to save shipment: %w", err)
	}

	s.logger.InfoContext(ctx, "order shipped",
		slog.String("order_id", record.OrderID),
		slog.String("carrier", record.Carrier),
		slog.Int("item_count", req.ItemCount),
		slog.String("correlation_token", req.CorrelationToken),
	)
	return record, nil
}

func (s *service) Shipment(ctx context.Context, orderID string) (entities.ShipmentRecord, error) {
	return s.repo.GetShipment(ctx, orderID)
}
