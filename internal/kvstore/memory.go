package kvstore

import (
	"context"
	"strings"
	"sync"
)

// Memory is an in-process Store with the same semantics as Postgres:
// insertion-order prefix scans and overwrite-in-place on existing keys.
// Used by tests and local development without a database.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	order  []string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.values[key] = cp
	return nil
}

func (m *Memory) GetByPrefix(_ context.Context, prefix string) ([][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var values [][]byte
	for _, key := range m.order {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		value := m.values[key]
		cp := make([]byte, len(value))
		copy(cp, value)
		values = append(values, cp)
	}
	return values, nil
}
