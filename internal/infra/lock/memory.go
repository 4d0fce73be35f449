package lock

import (
	"context"
	"sync"
)

// Memory is an in-process keyed mutex. Waiters give up when ctx ends.
type Memory struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[string]chan struct{})}
}

func (m *Memory) slot(key string) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, ok := m.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		m.slots[key] = ch
	}
	return ch
}

func (m *Memory) Lock(ctx context.Context, key string) (func(), error) {
	ch := m.slot(key)
	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { <-ch })
	}, nil
}
