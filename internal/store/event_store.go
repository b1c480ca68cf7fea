package store

import (
	"sync"

	"sports-hub-service/internal/domain/events"
)

// EventStore owns the single canonical event list. Reads return copies; writes replace wholesale.
type EventStore struct {
	mu     sync.RWMutex
	events []events.Event
	byID   map[string]int
}

// NewEventStore constructs an empty EventStore.
func NewEventStore() *EventStore {
	return &EventStore{
		byID: make(map[string]int),
	}
}

// ListEvents returns a copy of the current list in canonical order.
func (s *EventStore) ListEvents() []events.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]events.Event, len(s.events))
	copy(result, s.events)
	return result
}

// GetEvent retrieves an event by ID.
func (s *EventStore) GetEvent(id string) (events.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return events.Event{}, false
	}
	return s.events[i], true
}

// SetEvents replaces the existing list with a new snapshot, keeping its order.
// When ids repeat, lookups resolve to the first occurrence.
func (s *EventStore) SetEvents(list []events.Event) {
	snapshot := make([]events.Event, len(list))
	copy(snapshot, list)
	index := make(map[string]int, len(snapshot))
	for i, ev := range snapshot {
		if _, seen := index[ev.ID]; !seen {
			index[ev.ID] = i
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = snapshot
	s.byID = index
}

// Len reports how many events are held.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
