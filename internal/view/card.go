package view

import (
	"time"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/timeutil"
)

const (
	labelToday    = "Today"
	labelTomorrow = "Tomorrow"
	venueUnknown  = "TBD"

	dateLayout = "Mon, Jan 2"
	timeLayout = "3:04 PM"
)

// Card is the render-ready projection of an event. Every field is a display string.
type Card struct {
	ID         string `json:"id"`
	Sport      string `json:"sport"`
	League     string `json:"league"`
	Status     string `json:"status"`
	Live       bool   `json:"live"`
	Matchup    string `json:"matchup"`
	DateLabel  string `json:"dateLabel"`
	TimeString string `json:"timeString"`
	When       string `json:"when"`
	Venue      string `json:"venue"`
	Start      string `json:"start"`
}

// NewCard renders ev relative to now; labels use now's location.
func NewCard(ev events.Event, now time.Time) Card {
	league := events.Value(ev.League)
	if league == "" {
		league = events.Value(ev.Promotion)
	}
	venue := events.Value(ev.Venue)
	if venue == "" {
		venue = venueUnknown
	}
	a, b := ev.Sides()

	card := Card{
		ID:      ev.ID,
		Sport:   ev.Sport,
		League:  league,
		Status:  string(ev.Status),
		Live:    ev.Status == events.StatusLive,
		Matchup: a + " vs " + b,
		Venue:   venue,
		Start:   ev.Start,
	}

	start, err := ev.StartTime()
	if err != nil {
		return card
	}
	local := start.In(now.Location())
	card.DateLabel = DateLabel(local, now)
	card.TimeString = local.Format(timeLayout)
	card.When = card.DateLabel + " at " + card.TimeString
	return card
}

// Cards renders a list in order.
func Cards(list []events.Event, now time.Time) []Card {
	out := make([]Card, 0, len(list))
	for _, ev := range list {
		out = append(out, NewCard(ev, now))
	}
	return out
}

// DateLabel returns "Today", "Tomorrow" or a short weekday date such as "Wed, May 1".
func DateLabel(t, now time.Time) string {
	day := timeutil.StartOfDay(t.In(now.Location()))
	today := timeutil.StartOfDay(now)
	switch {
	case day.Equal(today):
		return labelToday
	case day.Equal(today.AddDate(0, 0, 1)):
		return labelTomorrow
	default:
		return t.In(now.Location()).Format(dateLayout)
	}
}
