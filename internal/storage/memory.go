package storage

import (
	"slices"
	"sync"
)

// Memory keeps values in process memory. It backs tests and the "memory"
// storage driver.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

func (s *Memory) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

func (s *Memory) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[key] = slices.Clone(value)
}

func (s *Memory) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, key)
}
