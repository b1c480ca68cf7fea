package offline

import (
	"context"
	"sort"
	"sync"
)

// MemoryStorage keeps buckets in process memory.
type MemoryStorage struct {
	mu      sync.RWMutex
	buckets map[string]*memoryBucket
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{buckets: make(map[string]*memoryBucket)}
}

func (s *MemoryStorage) Open(_ context.Context, name string) (Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.buckets[name]
	if !ok {
		b = &memoryBucket{entries: make(map[string]StoredResponse)}
		s.buckets[name] = b
	}
	return b, nil
}

func (s *MemoryStorage) Names(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.buckets))
	for name := range s.buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStorage) Delete(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.buckets[name]
	delete(s.buckets, name)
	return ok, nil
}

type memoryBucket struct {
	mu      sync.RWMutex
	entries map[string]StoredResponse
}

func (b *memoryBucket) Match(_ context.Context, key string) (StoredResponse, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	resp, ok := b.entries[key]
	if !ok {
		return StoredResponse{}, ErrNoMatch
	}
	return clone(resp), nil
}

func (b *memoryBucket) Put(_ context.Context, key string, resp StoredResponse) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = clone(resp)
	return nil
}

func (b *memoryBucket) Keys(context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func clone(resp StoredResponse) StoredResponse {
	resp.Header = resp.Header.Clone()
	resp.Body = append([]byte(nil), resp.Body...)
	return resp
}
