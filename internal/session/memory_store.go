package session

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[Key]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[Key]string)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string, key Key) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[sessionID][key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID string, key Key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, ok := s.data[sessionID]
	if !ok {
		entries = make(map[Key]string)
		s.data[sessionID] = entries
	}
	entries[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string, keys ...Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data[sessionID], k)
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
