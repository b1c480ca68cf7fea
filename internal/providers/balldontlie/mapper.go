package balldontlie

import (
	"fmt"
	"strings"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/timeutil"
)

func mapGame(g gameResponse) events.Event {
	return events.Event{
		ID:     fmt.Sprintf("%s%d", idPrefix, g.ID),
		Sport:  sportLabel,
		League: events.String(leagueLabel),
		TeamA:  events.String(teamName(g.VisitorTeam)),
		TeamB:  events.String(teamName(g.HomeTeam)),
		Start:  resolveStart(g),
		Status: mapStatus(g.Status),
	}
}

func teamName(t teamResponse) string {
	if name := strings.TrimSpace(t.FullName); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(t.City) + " " + strings.TrimSpace(t.Name))
}

// resolveStart prefers the tipoff instant (scheduled games carry it in status) over the game date.
func resolveStart(g gameResponse) string {
	if _, err := timeutil.ParseInstant(g.Status); err == nil {
		return g.Status
	}
	if _, err := timeutil.ParseInstant(g.Date); err == nil {
		return g.Date
	}
	if day, err := timeutil.ParseDate(g.Date); err == nil {
		return day.UTC().Format("2006-01-02T15:04:05Z")
	}
	return g.Date
}

// mapStatus reads the free-text status. Running games report the period
// ("1st Qtr", "OT", "2OT"), which counts as live.
func mapStatus(status string) events.Status {
	s := strings.ToLower(strings.TrimSpace(status))
	if strings.HasSuffix(s, " qtr") || (strings.HasSuffix(s, "ot") && len(s) <= 3) {
		return events.StatusLive
	}
	switch s {
	case "final", "ended":
		return events.StatusFinal
	case "in progress", "halftime", "end of period":
		return events.StatusLive
	case "postponed":
		return events.StatusPostponed
	case "canceled", "cancelled":
		return events.StatusCancelled
	case "delayed":
		return events.StatusDelayed
	default:
		return events.StatusScheduled
	}
}
