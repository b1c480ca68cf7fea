package providers

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps a sport tag (e.g. "mlb") to the adapter that serves it.
// Adding a league means registering one more adapter; nothing else changes.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register binds adapter to tag, replacing any previous binding.
func (r *Registry) Register(tag string, adapter Adapter) {
	key := normalizeTag(tag)
	if key == "" || adapter == nil {
		return
	}
	r.mu.Lock()
	r.adapters[key] = adapter
	r.mu.Unlock()
}

// Get returns the adapter for tag or ErrNoAdapter.
func (r *Registry) Get(tag string) (Adapter, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoAdapter, tag)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	adapter, ok := r.adapters[normalizeTag(tag)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoAdapter, tag)
	}
	return adapter, nil
}

// Tags lists registered sport tags in sorted order.
func (r *Registry) Tags() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.adapters))
	for tag := range r.adapters {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
