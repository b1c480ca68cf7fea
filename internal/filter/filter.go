// Package filter narrows the loaded event list to the caller's selection.
// Every call recomputes from the full list it is given; nothing is cached between calls.
package filter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/timeutil"
)

// Timeframe selects the calendar window applied to event start times.
type Timeframe string

const (
	Today    Timeframe = "today"
	Tomorrow Timeframe = "tomorrow"
	Week     Timeframe = "week"
	All      Timeframe = "all"
)

// AllSports disables the sport filter.
const AllSports = "all"

// ParseTimeframe validates a timeframe value. Empty input selects Today.
func ParseTimeframe(raw string) (Timeframe, error) {
	switch tf := Timeframe(strings.ToLower(strings.TrimSpace(raw))); tf {
	case "":
		return Today, nil
	case Today, Tomorrow, Week, All:
		return tf, nil
	default:
		return "", fmt.Errorf("unknown timeframe %q", raw)
	}
}

// Context is the caller's current selection. It is a value type; callers own their copy.
type Context struct {
	Timeframe Timeframe
	Sport     string
	Query     string
}

// NewContext normalizes sport and query (lower-cased, trimmed).
func NewContext(tf Timeframe, sport, query string) Context {
	sport = strings.ToLower(strings.TrimSpace(sport))
	if sport == "" {
		sport = AllSports
	}
	if tf == "" {
		tf = Today
	}
	return Context{
		Timeframe: tf,
		Sport:     sport,
		Query:     strings.ToLower(strings.TrimSpace(query)),
	}
}

// Window is a half-open [From, To) interval. A zero To means unbounded.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if t.Before(w.From) {
		return false
	}
	return w.To.IsZero() || t.Before(w.To)
}

// WindowFor computes the timeframe window from now using now's local calendar.
func WindowFor(tf Timeframe, now time.Time) Window {
	startOfToday := timeutil.StartOfDay(now)
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)
	switch tf {
	case Tomorrow:
		// Tomorrow spans two calendar days.
		return Window{From: startOfTomorrow, To: startOfTomorrow.AddDate(0, 0, 2)}
	case Week:
		return Window{From: startOfToday, To: startOfToday.AddDate(0, 0, 7)}
	case All:
		return Window{From: startOfToday}
	default:
		return Window{From: startOfToday, To: startOfTomorrow}
	}
}

// Apply returns the events matching every part of the selection, in input order.
// The result is a fresh slice; the input is never modified.
func Apply(list []events.Event, c Context, now time.Time) []events.Event {
	window := WindowFor(c.Timeframe, now)
	sport := strings.ToLower(strings.TrimSpace(c.Sport))
	query := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]events.Event, 0, len(list))
	for _, ev := range list {
		start, err := ev.StartTime()
		if err != nil || !window.Contains(start) {
			continue
		}
		if sport != "" && sport != AllSports && !strings.EqualFold(ev.Sport, sport) {
			continue
		}
		if query != "" && !strings.Contains(SearchText(ev), query) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// SearchText builds the lower-cased composite string matched by free-text search.
func SearchText(ev events.Event) string {
	fields := []string{
		events.Value(ev.TeamA),
		events.Value(ev.TeamB),
		events.Value(ev.FighterA),
		events.Value(ev.FighterB),
		events.Value(ev.League),
		events.Value(ev.Promotion),
		ev.Sport,
	}
	parts := fields[:0]
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Sports lists the distinct sport labels present in the list, sorted.
func Sports(list []events.Event) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, ev := range list {
		if ev.Sport == "" {
			continue
		}
		if _, ok := seen[ev.Sport]; ok {
			continue
		}
		seen[ev.Sport] = struct{}{}
		out = append(out, ev.Sport)
	}
	sort.Strings(out)
	return out
}
