package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/correlation"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/repo"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/pkg/trm"

	"github.com/segmentio/kafka-go"
)

type OutboxRepo interface {
	PendingChanges(ctx context.Context, limit int) ([]repo.Change, error)
	MarkPublished(ctx context.Context, ids []int64) error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewWriter returns the change-feed producer. Messages are keyed by order id so
// every change of one order lands on the same partition.
func NewWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: cfg.BatchTimeout,
	}
}

// Relay publishes outbox rows to Kafka in outbox order.
type Relay struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OutboxRepo
	writer    MessageWriter
	cfg       config.Outbox
}

func NewRelay(logger *slog.Logger, txManager trm.Manager, repo OutboxRepo, writer MessageWriter, cfg config.Outbox) *Relay {
	return &Relay{
		logger:    logger.With(slog.String("feed", "outbox-relay")),
		txManager: txManager,
		repo:      repo,
		writer:    writer,
		cfg:       cfg,
	}
}

// Start runs the relay loop until ctx is done.
func (r *Relay) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(r.cfg.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.drain(ctx)
			}
		}
	}()
	return nil
}

func (r *Relay) drain(ctx context.Context) {
	for {
		n, err := r.Flush(ctx)
		if err != nil {
			if ctx.Err() == nil {
				outboxErrors.Inc()
				r.logger.Error("failed to relay changes", slog.Any("error", err))
			}
			return
		}
		if n < r.cfg.BatchSize {
			return
		}
	}
}

// Flush publishes one batch of pending changes and returns its size. The rows stay
// locked until Kafka acknowledged them, so a failed write leaves them pending.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	var n int
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		changes, err := r.repo.PendingChanges(ctx, r.cfg.BatchSize)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, 0, len(changes))
		ids := make([]int64, 0, len(changes))
		for _, c := range changes {
			msgs = append(msgs, changeMessageFor(c))
			ids = append(ids, c.ID)
		}

		if err := r.writer.WriteMessages(ctx, msgs...); err != nil {
			return fmt.Errorf("failed to write changes: %w", err)
		}
		if err := r.repo.MarkPublished(ctx, ids); err != nil {
			return err
		}
		n = len(changes)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if n > 0 {
		outboxPublished.Add(float64(n))
		r.logger.Debug("changes published", slog.Int("count", n))
	}
	return n, nil
}

func changeMessageFor(c repo.Change) kafka.Message {
	return kafka.Message{
		Key:   []byte(c.OrderID),
		Value: c.Payload,
		Headers: []kafka.Header{
			{Key: correlation.Header, Value: []byte(c.CorrelationToken)},
		},
	}
}
