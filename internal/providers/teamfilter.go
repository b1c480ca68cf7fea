package providers

import (
	"strings"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/domain/teams"
)

// FilterForTeams keeps events where a followed team's name appears, case-insensitively,
// inside either side of the matchup. Matching is by substring, so a short name can match
// a longer one ("Sox" matches both "Boston Red Sox" and "Chicago White Sox").
func FilterForTeams(list []events.Event, followed []teams.Team) []events.Event {
	names := make([]string, 0, len(followed))
	for _, t := range followed {
		if name := strings.ToLower(strings.TrimSpace(t.DisplayName)); name != "" {
			names = append(names, name)
		}
	}

	out := make([]events.Event, 0, len(list))
	if len(names) == 0 {
		return out
	}
	for _, ev := range list {
		a, b := ev.Sides()
		a, b = strings.ToLower(a), strings.ToLower(b)
		for _, name := range names {
			if strings.Contains(a, name) || strings.Contains(b, name) {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}
