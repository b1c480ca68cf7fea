package view

import (
	"testing"
	"time"

	"sports-hub-service/internal/domain/events"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestNewCardTeamMatchup(t *testing.T) {
	ev := events.Event{
		ID:     "mlb_100",
		Sport:  "Baseball",
		League: events.String("MLB"),
		TeamA:  events.String("New York Yankees"),
		TeamB:  events.String("Boston Red Sox"),
		Start:  "2024-05-01T23:05:00Z",
		Status: events.StatusLive,
		Venue:  events.String("Fenway Park"),
	}

	card := NewCard(ev, testNow)
	if card.Matchup != "New York Yankees vs Boston Red Sox" {
		t.Fatalf("unexpected matchup %q", card.Matchup)
	}
	if card.League != "MLB" || card.Venue != "Fenway Park" || !card.Live {
		t.Fatalf("unexpected card %+v", card)
	}
	if card.DateLabel != "Today" || card.TimeString != "11:05 PM" || card.When != "Today at 11:05 PM" {
		t.Fatalf("unexpected time labels %+v", card)
	}
}

func TestNewCardFightDefaults(t *testing.T) {
	ev := events.Event{
		ID:        "ufc_1",
		Sport:     "MMA",
		Promotion: events.String("UFC"),
		FighterA:  events.String("Jon Jones"),
		FighterB:  events.String("Stipe Miocic"),
		Start:     "2024-05-02T02:00:00Z",
		Status:    events.StatusScheduled,
	}

	card := NewCard(ev, testNow)
	if card.Matchup != "Jon Jones vs Stipe Miocic" {
		t.Fatalf("unexpected matchup %q", card.Matchup)
	}
	if card.League != "UFC" {
		t.Fatalf("expected promotion as league fallback, got %q", card.League)
	}
	if card.Venue != "TBD" {
		t.Fatalf("expected TBD venue, got %q", card.Venue)
	}
	if card.DateLabel != "Tomorrow" || card.TimeString != "2:00 AM" || card.Live {
		t.Fatalf("unexpected labels %+v", card)
	}
}

func TestDateLabelUsesLocalCalendar(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, ny)

	// 2024-05-02T02:00Z is still May 1 in New York.
	start := time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC)
	if got := DateLabel(start, now); got != "Today" {
		t.Fatalf("expected Today in New York, got %s", got)
	}
	later := time.Date(2024, 5, 6, 16, 0, 0, 0, time.UTC)
	if got := DateLabel(later, now); got != "Mon, May 6" {
		t.Fatalf("expected short date, got %s", got)
	}
}

func TestCardsKeepsOrderAndToleratesBadStart(t *testing.T) {
	list := []events.Event{
		{ID: "b", TeamA: events.String("A"), TeamB: events.String("B"), Start: "bogus"},
		{ID: "a", TeamA: events.String("C"), TeamB: events.String("D"), Start: "2024-05-01T23:00:00Z"},
	}

	cards := Cards(list, testNow)
	if len(cards) != 2 || cards[0].ID != "b" || cards[1].ID != "a" {
		t.Fatalf("unexpected cards %+v", cards)
	}
	if cards[0].DateLabel != "" || cards[0].TimeString != "" {
		t.Fatalf("expected empty labels for unparsable start, got %+v", cards[0])
	}
}
