package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/feed"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/repo"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/pkg/trm"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/pkg/utils"
)

type OrderRepo interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	UpsertOrder(ctx context.Context, o entities.Order) error
	InsertChange(ctx context.Context, c repo.Change) error
}

// Cache holds terminal orders only; they never change once cached.
type Cache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
}

type ChangeFeed interface {
	Subscribe(handler entities.ChangeHandler)
}

var retryConfig = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type orderStore struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	feed      ChangeFeed
}

func NewOrderStore(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, feed ChangeFeed) *orderStore {
	return &orderStore{
		logger:    logger.With(slog.String("service", "order-store")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		feed:      feed,
	}
}

// Put replaces the full record and appends the change to the outbox in the same
// transaction. order.Version must be the version the caller read (0 for new orders).
func (s *orderStore) Put(ctx context.Context, order entities.Order) error {
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var prev *entities.Order
			current, err := s.repo.GetOrderForUpdate(ctx, order.OrderID)
			switch {
			case errors.Is(err, entities.ErrOrderNotFound):
			case err != nil:
				return fmt.Errorf("failed to lock order: %w", err)
			default:
				prev = &current
			}

			if err := entities.CheckWrite(prev, order); err != nil {
				return err
			}

			next := order.Clone()
			next.Version = order.Version + 1
			if err := s.repo.UpsertOrder(ctx, next); err != nil {
				return err
			}

			payload, err := feed.EncodeChange(entities.OrderChange{Order: next, Previous: prev})
			if err != nil {
				return err
			}
			change := repo.Change{
				OrderID:          next.OrderID,
				Version:          next.Version,
				CorrelationToken: next.CorrelationToken,
				Payload:          payload,
			}
			if err := s.repo.InsertChange(ctx, change); err != nil {
				return err
			}

			s.logger.DebugContext(ctx, "order saved",
				slog.String("order_id", next.OrderID),
				slog.String("status", string(next.Status)),
				slog.Int64("version", next.Version),
			)
			return nil
		})
	}

	return utils.Retry(ctx, retryConfig, fn,
		entities.ErrVersionConflict, entities.ErrInvalidTransition, entities.ErrInvalidOrder)
}

func (s *orderStore) Get(ctx context.Context, orderID string) (entities.Order, error) {
	if order, ok := s.cache.Get(orderID); ok {
		return order.Clone(), nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrder(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, retryConfig, fn, entities.ErrOrderNotFound, entities.ErrInvalidOrder); err != nil {
		return entities.Order{}, err
	}

	if order.Status.Terminal() {
		s.cache.Set(orderID, order.Clone())
	}
	return order, nil
}

func (s *orderStore) FindByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	return s.repo.FindByCustomer(ctx, customerID)
}

func (s *orderStore) Subscribe(handler entities.ChangeHandler) {
	s.feed.Subscribe(handler)
}
