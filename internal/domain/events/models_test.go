package events

import (
	"errors"
	"reflect"
	"testing"
)

func TestStatusValues(t *testing.T) {
	expected := map[Status]string{
		StatusScheduled: "Scheduled",
		StatusLive:      "Live",
		StatusFinal:     "Final",
		StatusPostponed: "Postponed",
		StatusCancelled: "Cancelled",
		StatusDelayed:   "Delayed",
	}
	for status, want := range expected {
		if string(status) != want {
			t.Fatalf("expected %q got %q", want, status)
		}
	}
}

func TestEventJSONTags(t *testing.T) {
	eventType := reflect.TypeOf(Event{})
	fields := map[string]string{
		"ID":        "id",
		"Sport":     "sport",
		"League":    "league",
		"Promotion": "promotion",
		"TeamA":     "teamA",
		"TeamB":     "teamB",
		"FighterA":  "fighterA",
		"FighterB":  "fighterB",
		"Start":     "start",
		"Status":    "status",
		"Venue":     "venue",
	}
	for name, tag := range fields {
		field, ok := eventType.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if got := field.Tag.Get("json"); got != tag {
			t.Fatalf("field %s expected json tag %s, got %s", name, tag, got)
		}
	}
}

func TestValidateMatchupExclusivity(t *testing.T) {
	teams := Event{ID: "a", TeamA: String("A"), TeamB: String("B"), Start: "2024-05-01T23:00:00Z"}
	if err := teams.Validate(); err != nil {
		t.Fatalf("expected team matchup to validate, got %v", err)
	}

	fight := Event{ID: "b", FighterA: String("X"), FighterB: String("Y"), Start: "2024-05-01T23:00:00Z"}
	if err := fight.Validate(); err != nil {
		t.Fatalf("expected fighter matchup to validate, got %v", err)
	}

	both := Event{ID: "c", TeamA: String("A"), TeamB: String("B"), FighterA: String("X"), FighterB: String("Y"), Start: "2024-05-01T23:00:00Z"}
	if err := both.Validate(); !errors.Is(err, ErrMatchup) {
		t.Fatalf("expected matchup error, got %v", err)
	}

	neither := Event{ID: "d", TeamA: String("A"), Start: "2024-05-01T23:00:00Z"}
	if err := neither.Validate(); !errors.Is(err, ErrMatchup) {
		t.Fatalf("expected matchup error for half-populated event, got %v", err)
	}
}

func TestValidateRejectsBadStart(t *testing.T) {
	ev := Event{ID: "a", TeamA: String("A"), TeamB: String("B"), Start: "soon"}
	if err := ev.Validate(); !errors.Is(err, ErrStart) {
		t.Fatalf("expected start error, got %v", err)
	}
}

func TestStringTreatsBlankAsNull(t *testing.T) {
	if String("  ") != nil {
		t.Fatal("expected blank to map to nil")
	}
	if got := Value(String("MLB")); got != "MLB" {
		t.Fatalf("expected MLB, got %q", got)
	}
	if Value(nil) != "" {
		t.Fatal("expected empty value for nil")
	}
}

func TestSortByStartIsStable(t *testing.T) {
	list := []Event{
		{ID: "late", Start: "2024-05-03T00:00:00Z"},
		{ID: "tie-1", Start: "2024-05-01T00:00:00Z"},
		{ID: "bad", Start: "???"},
		{ID: "tie-2", Start: "2024-05-01T00:00:00Z"},
		{ID: "early", Start: "2024-04-30T00:00:00Z"},
	}
	SortByStart(list)

	want := []string{"early", "tie-1", "tie-2", "late", "bad"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d expected %s, got %s", i, id, list[i].ID)
		}
	}
}
