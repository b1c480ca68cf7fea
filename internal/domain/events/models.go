package events

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"sports-hub-service/internal/timeutil"
)

// Status is the canonical lifecycle state shared by every league adapter.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusLive      Status = "Live"
	StatusFinal     Status = "Final"
	StatusPostponed Status = "Postponed"
	StatusCancelled Status = "Cancelled"
	StatusDelayed   Status = "Delayed"
)

var (
	ErrMatchup = errors.New("event must carry exactly one of teamA/teamB or fighterA/fighterB")
	ErrStart   = errors.New("event start is not a valid ISO-8601 instant")
)

// Event is the canonical, source-agnostic schedule record.
// Nullable fields are pointers; presentation defaults (e.g. "TBD") are applied by the view layer.
type Event struct {
	ID        string  `json:"id" yaml:"id"`
	Sport     string  `json:"sport" yaml:"sport"`
	League    *string `json:"league" yaml:"league"`
	Promotion *string `json:"promotion" yaml:"promotion"`
	TeamA     *string `json:"teamA" yaml:"teamA"`
	TeamB     *string `json:"teamB" yaml:"teamB"`
	FighterA  *string `json:"fighterA" yaml:"fighterA"`
	FighterB  *string `json:"fighterB" yaml:"fighterB"`
	Start     string  `json:"start" yaml:"start"`
	Status    Status  `json:"status" yaml:"status"`
	Venue     *string `json:"venue" yaml:"venue"`
}

// String returns a pointer to s, or nil when s is blank.
func String(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Value dereferences an optional field, returning "" for nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// HasTeams reports whether both team sides are populated.
func (e Event) HasTeams() bool {
	return Value(e.TeamA) != "" && Value(e.TeamB) != ""
}

// HasFighters reports whether both fighter sides are populated.
func (e Event) HasFighters() bool {
	return Value(e.FighterA) != "" && Value(e.FighterB) != ""
}

// Sides returns the two competitors in display order (away/first, home/second).
func (e Event) Sides() (string, string) {
	if e.HasTeams() {
		return Value(e.TeamA), Value(e.TeamB)
	}
	return Value(e.FighterA), Value(e.FighterB)
}

// StartTime parses Start into an absolute instant.
func (e Event) StartTime() (time.Time, error) {
	t, err := timeutil.ParseInstant(e.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrStart, e.Start)
	}
	return t, nil
}

// Validate enforces the matchup exclusivity and parseable-start invariants.
func (e Event) Validate() error {
	if e.HasTeams() == e.HasFighters() {
		return fmt.Errorf("event %s: %w", e.ID, ErrMatchup)
	}
	if _, err := e.StartTime(); err != nil {
		return fmt.Errorf("event %s: %w", e.ID, err)
	}
	return nil
}

// SortByStart orders events ascending by start; ties keep their input order.
// Events whose start cannot be parsed sink to the end.
func SortByStart(list []Event) {
	type keyed struct {
		at time.Time
		ok bool
	}
	keys := make([]keyed, len(list))
	idx := make([]int, len(list))
	for i := range list {
		idx[i] = i
		at, err := list[i].StartTime()
		keys[i] = keyed{at: at, ok: err == nil}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.ok != kb.ok {
			return ka.ok
		}
		return ka.at.Before(kb.at)
	})
	sorted := make([]Event, len(list))
	for i, j := range idx {
		sorted[i] = list[j]
	}
	copy(list, sorted)
}
