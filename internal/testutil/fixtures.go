package testutil

import (
	"strings"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/domain/teams"
)

// SampleEvent returns a valid team-vs-team event starting at start (RFC3339).
func SampleEvent(id, sport, league, teamA, teamB, start string) events.Event {
	return events.Event{
		ID:     id,
		Sport:  sport,
		League: events.String(league),
		TeamA:  events.String(teamA),
		TeamB:  events.String(teamB),
		Start:  start,
		Status: events.StatusScheduled,
		Venue:  events.String("Test Park"),
	}
}

// SampleFight returns a valid fighter-vs-fighter event under a promotion.
func SampleFight(id, promotion, fighterA, fighterB, start string) events.Event {
	return events.Event{
		ID:        id,
		Sport:     "MMA",
		Promotion: events.String(promotion),
		FighterA:  events.String(fighterA),
		FighterB:  events.String(fighterB),
		Start:     start,
		Status:    events.StatusScheduled,
	}
}

// SampleTeam returns a followed team for the given sport tag.
func SampleTeam(name, tag string) teams.Team {
	return teams.Team{ID: name, DisplayName: name, League: strings.ToUpper(tag), SportTag: tag}
}
