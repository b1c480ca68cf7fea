package mlb

import (
	"sports-hub-service/internal/domain/events"
)

func mapSchedule(payload scheduleResponse) []events.Event {
	out := make([]events.Event, 0)
	for _, day := range payload.Dates {
		for _, g := range day.Games {
			out = append(out, mapGame(g))
		}
	}
	return out
}

func mapGame(g gameResponse) events.Event {
	ev := events.Event{
		ID:     idPrefix + g.GamePk.String(),
		Sport:  sportLabel,
		League: events.String(leagueLabel),
		TeamA:  events.String(g.Teams.Away.Team.Name),
		TeamB:  events.String(g.Teams.Home.Team.Name),
		Start:  g.GameDate,
		Status: mapStatus(g.Status),
	}
	if g.Venue != nil {
		ev.Venue = events.String(g.Venue.Name)
	}
	return ev
}

// mapStatus checks the coarse abstract state first, then the detailed state
// (or its one-letter status code when the detailed state is absent).
func mapStatus(s statusResponse) events.Status {
	switch s.AbstractGameState {
	case "Live":
		return events.StatusLive
	case "Final":
		return events.StatusFinal
	}

	state := s.DetailedState
	if state == "" {
		state = s.StatusCode
	}
	switch state {
	case "In Progress", "I":
		return events.StatusLive
	case "Final", "F":
		return events.StatusFinal
	case "Postponed", "P":
		return events.StatusPostponed
	case "Cancelled", "C":
		return events.StatusCancelled
	case "Delayed", "D":
		return events.StatusDelayed
	default:
		return events.StatusScheduled
	}
}
