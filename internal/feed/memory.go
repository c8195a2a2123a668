package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// Memory is an in-process order store with its own change feed. Changes of one
// order are hashed onto a single worker and dispatched in write order; different
// orders may be dispatched concurrently.
type Memory struct {
	logger *slog.Logger

	mu     sync.RWMutex
	orders map[string]entities.Order

	hmu      sync.RWMutex
	handlers []entities.ChangeHandler

	queues []*queue
}

func NewMemory(logger *slog.Logger, workers int) *Memory {
	if workers < 1 {
		workers = 1
	}
	queues := make([]*queue, workers)
	for i := range queues {
		queues[i] = newQueue()
	}
	return &Memory{
		logger: logger.With(slog.String("feed", "memory")),
		orders: make(map[string]entities.Order),
		queues: queues,
	}
}

func (m *Memory) Put(ctx context.Context, order entities.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var prev *entities.Order
	if current, ok := m.orders[order.OrderID]; ok {
		prev = &current
	}
	if err := entities.CheckWrite(prev, order); err != nil {
		return err
	}

	next := order.Clone()
	next.Version = order.Version + 1
	m.orders[next.OrderID] = next

	// Enqueued under the write lock so queue order equals write order.
	m.queueFor(next.OrderID).push(entities.OrderChange{Order: next.Clone(), Previous: prev})
	return nil
}

func (m *Memory) Get(_ context.Context, orderID string) (entities.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.orders[orderID]
	if !ok {
		return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrOrderNotFound, orderID)
	}
	return order.Clone(), nil
}

func (m *Memory) FindByCustomer(_ context.Context, customerID string) ([]entities.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]entities.Order, 0)
	for _, o := range m.orders {
		if o.Customer.ID == customerID {
			orders = append(orders, o.Clone())
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].Date.After(orders[j].Date) })
	return orders, nil
}

func (m *Memory) Subscribe(handler entities.ChangeHandler) {
	m.hmu.Lock()
	defer m.hmu.Unlock()
	m.handlers = append(m.handlers, handler)
}

// Consume runs the dispatch workers until ctx is done. Changes written before
// Consume starts wait in their queues.
func (m *Memory) Consume(ctx context.Context) {
	var g errgroup.Group
	for i, q := range m.queues {
		i, q := i, q
		g.Go(func() error {
			m.work(ctx, q, i)
			return nil
		})
	}
	_ = g.Wait()
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) work(ctx context.Context, q *queue, worker int) {
	logger := m.logger.With(slog.Int("worker", worker))
	for {
		for change, ok := q.pop(); ok; change, ok = q.pop() {
			if ctx.Err() != nil {
				return
			}
			m.dispatch(ctx, logger, change)
		}

		select {
		case <-ctx.Done():
			return
		case <-q.ready:
		}
	}
}

func (m *Memory) dispatch(ctx context.Context, logger *slog.Logger, change entities.OrderChange) {
	m.hmu.RLock()
	handlers := m.handlers
	m.hmu.RUnlock()

	changesInProgress.Inc()
	defer changesInProgress.Dec()
	start := time.Now()

	failed := false
	for _, h := range handlers {
		if err := h(ctx, change.Clone()); err != nil {
			failed = true
			logger.Error("failed to handle change",
				slog.String("order_id", change.Order.OrderID),
				slog.Int64("version", change.Order.Version),
				slog.Any("error", err),
			)
		}
	}

	changeProcessingDuration.Observe(time.Since(start).Seconds())
	if failed {
		changesFailed.Inc()
	} else {
		changesProcessed.Inc()
	}
}

func (m *Memory) queueFor(orderID string) *queue {
	return m.queues[xxhash.Sum64String(orderID)%uint64(len(m.queues))]
}

// queue is an unbounded FIFO; ready holds a token whenever items may be pending.
type queue struct {
	mu    sync.Mutex
	items []entities.OrderChange
	ready chan struct{}
}

func newQueue() *queue {
	return &queue{ready: make(chan struct{}, 1)}
}

func (q *queue) push(c entities.OrderChange) {
	q.mu.Lock()
	q.items = append(q.items, c)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *queue) pop() (entities.OrderChange, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return entities.OrderChange{}, false
	}
	c := q.items[0]
	q.items[0] = entities.OrderChange{}
	q.items = q.items[1:]
	return c, true
}
