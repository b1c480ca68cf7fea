package store

import (
	"testing"

	"sports-hub-service/internal/domain/events"
)

func TestEventStoreSetAndGet(t *testing.T) {
	s := NewEventStore()

	s.SetEvents([]events.Event{
		{ID: "2", Sport: "Baseball"},
		{ID: "1", Sport: "Hockey"},
	})

	list := s.ListEvents()
	if len(list) != 2 || list[0].ID != "2" || list[1].ID != "1" {
		t.Fatalf("expected order preserved, got %+v", list)
	}

	ev, ok := s.GetEvent("1")
	if !ok {
		t.Fatalf("expected to find event with id 1")
	}
	if ev.Sport != "Hockey" {
		t.Fatalf("unexpected sport %s", ev.Sport)
	}
	if s.Len() != 2 {
		t.Fatalf("expected len 2, got %d", s.Len())
	}
}

func TestEventStoreGetNotFound(t *testing.T) {
	s := NewEventStore()
	if _, ok := s.GetEvent("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
	if list := s.ListEvents(); list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list from empty store")
	}
}

func TestEventStoreSetReplacesSnapshot(t *testing.T) {
	s := NewEventStore()
	s.SetEvents([]events.Event{{ID: "old"}})
	s.SetEvents([]events.Event{{ID: "new"}})

	if _, ok := s.GetEvent("old"); ok {
		t.Fatalf("expected old event to be gone after replace")
	}
	if _, ok := s.GetEvent("new"); !ok {
		t.Fatalf("expected new event after replace")
	}
}

func TestEventStoreIsolatesCallers(t *testing.T) {
	s := NewEventStore()
	input := []events.Event{{ID: "1", Sport: "Baseball"}}
	s.SetEvents(input)
	input[0].Sport = "mutated"

	out := s.ListEvents()
	out[0].Sport = "also mutated"

	ev, _ := s.GetEvent("1")
	if ev.Sport != "Baseball" {
		t.Fatalf("expected store to keep its own copy, got %s", ev.Sport)
	}
}

func TestEventStoreDuplicateIDsResolveToFirst(t *testing.T) {
	s := NewEventStore()
	s.SetEvents([]events.Event{{ID: "x", Sport: "first"}, {ID: "x", Sport: "second"}})

	ev, _ := s.GetEvent("x")
	if ev.Sport != "first" {
		t.Fatalf("expected first occurrence, got %s", ev.Sport)
	}
}
