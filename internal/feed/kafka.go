package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"

	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriteCloser interface {
	MessageWriter
	Close() error
}

// Consumer delivers change-feed messages to the subscribed handlers. Its readers
// share one consumer group, so each partition, and with it each order, is served
// by a single reader at a time.
type Consumer struct {
	logger  *slog.Logger
	readers []MessageReader
	dlq     MessageWriteCloser

	mu       sync.RWMutex
	handlers []entities.ChangeHandler
}

func NewConsumer(logger *slog.Logger, cfg config.Kafka) *Consumer {
	readers := make([]MessageReader, 0, cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		readers = append(readers, kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}))
	}

	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
	}

	return newConsumer(logger, readers, dlq)
}

func newConsumer(logger *slog.Logger, readers []MessageReader, dlq MessageWriteCloser) *Consumer {
	return &Consumer{
		logger:  logger.With(slog.String("feed", "kafka")),
		readers: readers,
		dlq:     dlq,
	}
}

func (c *Consumer) Subscribe(handler entities.ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Consume blocks until ctx is done or every reader is exhausted.
func (c *Consumer) Consume(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	for i, r := range c.readers {
		i, r := i, r
		g.Go(func() error {
			c.consume(ctx, r, i)
			return nil
		})
	}
	_ = g.Wait()
}

func (c *Consumer) consume(ctx context.Context, r MessageReader, worker int) {
	logger := c.logger.With(slog.Int("worker", worker))
	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return
			}
			logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		changesInProgress.Inc()
		start := time.Now()
		err = c.handleChange(ctx, m)
		changeProcessingDuration.Observe(time.Since(start).Seconds())
		changesInProgress.Dec()

		if err != nil {
			// Leave the message uncommitted so the group redelivers it after restart.
			if ctx.Err() != nil {
				return
			}

			changesFailed.Inc()
			logger.Error("failed to handle change", slog.Any("error", err))

			if err := c.writeToDLQ(ctx, m); err != nil {
				logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			changesDLQ.Inc()
		} else {
			changesProcessed.Inc()
		}

		if err := r.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (c *Consumer) handleChange(ctx context.Context, m kafka.Message) error {
	change, err := DecodeChange(m.Value)
	if err != nil {
		return err
	}

	c.mu.RLock()
	handlers := c.handlers
	c.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, change); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("order %s at version %d: %w", change.Order.OrderID, change.Order.Version, errors.Join(errs...))
	}
	return nil
}

func (c *Consumer) writeToDLQ(ctx context.Context, m kafka.Message) error {
	msg := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return c.dlq.WriteMessages(ctx, msg)
}

func (c *Consumer) Close() error {
	var errs []error
	for _, r := range c.readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.dlq.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
