package storage

import (
	"context"
	"sync"
)

// MemorySlot keeps slots in process memory. Contents are lost on exit.
type MemorySlot struct {
	mu     sync.Mutex
	values map[string]string
}

var _ Slot = (*MemorySlot)(nil)

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

func (m *MemorySlot) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemorySlot) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemorySlot) Ping(context.Context) error { return nil }

func (m *MemorySlot) Close() error { return nil }
