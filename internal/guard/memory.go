package guard

import (
	"context"
	"sync"
	"time"
)

type Memory struct {
	mu     sync.Mutex
	ttl    time.Duration
	claims map[string]time.Time
	now    func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:    ttl,
		claims: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (g *Memory) Claim(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if expires, ok := g.claims[key]; ok && now.Before(expires) {
		return false, nil
	}
	g.claims[key] = now.Add(g.ttl)
	return true, nil
}

func (g *Memory) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.claims, key)
	return nil
}
