package storage

import (
	"context"
	"sync"
)

type memoryStore struct {
	prefix string

	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an in-process store used by tests and ephemeral runs.
func NewMemory(prefix string) Store {
	return &memoryStore{prefix: prefix, data: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[s.prefix+key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[s.prefix+key] = stored
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, s.prefix+key)
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
