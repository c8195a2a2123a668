package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"

	"github.com/google/uuid"
)

type Repo interface {
	GetAuthorization(ctx context.Context, idempotencyKey string) (entities.Authorization, error)

	// SaveAuthorization returns the stored record, which is the existing one when
	// the idempotency key was used before.
	SaveAuthorization(ctx context.Context, a entities.Authorization) (entities.Authorization, error)

	FindByOrder(ctx context.Context, orderID string) ([]entities.Authorization, error)
}

type service struct {
	logger     *slog.Logger
	authorizer Authorizer
	repo       Repo
	now        func() time.Time
}

func NewService(logger *slog.Logger, authorizer Authorizer, repo Repo) *service {
	return &service{
		logger:     logger.With(slog.String("service", "payment")),
		authorizer: authorizer,
		repo:       repo,
		now:        time.Now,
	}
}

// Authorize decides req once per idempotency key. A request without a key is
// always decided anew.
func (s *service) Authorize(ctx context.Context, req entities.PaymentRequest) (entities.Authorization, error) {
	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	} else {
		existing, err := s.repo.GetAuthorization(ctx, key)
		if err == nil {
			s.logger.InfoContext(ctx, "repeated authorization",
				slog.String("order_id", existing.OrderID),
				slog.String("idempotency_key", key),
				slog.String("correlation_token", req.CorrelationToken),
			)
			return existing, nil
		}
		if !errors.Is(err, entities.ErrAuthorizationNotFound) {
			return entities.Authorization{}, fmt.Errorf("failed to get authorization: %w", err)
		}
	}

	auth, err := s.repo.SaveAuthorization(ctx, entities.Authorization{
		OrderID:        req.OrderID,
		IdempotencyKey: key,
		Payment:        s.authorizer.Authorize(req.Amount),
		Time:           s.now().UTC(),
	})
	if err != nil {
		return entities.Authorization{}, fmt.Errorf("failed to save authorization: %w", err)
	}

	s.logger.InfoContext(ctx, "payment processed",
		slog.String("order_id", auth.OrderID),
		slog.Float64("amount", req.Amount),
		slog.Bool("authorised", auth.Payment.Authorised),
		slog.String("message", auth.Payment.Message),
		slog.String("correlation_token", req.CorrelationToken),
	)
	return auth, nil
}

func (s *service) Authorizations(ctx context.Context, orderID string) ([]entities.Authorization, error) {
	return s.repo.FindByOrder(ctx, orderID)
}
