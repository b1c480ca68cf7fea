package fixtures

import (
	"errors"
	"strings"
	"testing"

	"sports-hub-service/internal/domain/events"
)

func TestFormatFor(t *testing.T) {
	cases := map[string]Format{
		"/data/teams.json": FormatJSON,
		"/data/teams.yaml": FormatYAML,
		"/data/teams.YML":  FormatYAML,
		"/data/teams":      FormatJSON,
	}
	for p, want := range cases {
		if got := FormatFor(p); got != want {
			t.Fatalf("%s: expected %s, got %s", p, want, got)
		}
	}
}

func TestDecodeTeamsJSON(t *testing.T) {
	input := `[{"id": 1, "team": "Yankees", "type": "MLB"}, {"id": "bos", "team": "Celtics", "type": "nba"}]`

	got, err := DecodeTeams(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}
	if got[0].ID != "1" || got[0].DisplayName != "Yankees" || got[0].SportTag != "mlb" || got[0].League != "MLB" {
		t.Fatalf("unexpected first team %+v", got[0])
	}
	if got[1].ID != "bos" || got[1].SportTag != "nba" {
		t.Fatalf("unexpected second team %+v", got[1])
	}
}

func TestDecodeTeamsYAML(t *testing.T) {
	input := "- id: 7\n  team: Rangers\n  type: nhl\n"

	got, err := DecodeTeams(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "7" || got[0].DisplayName != "Rangers" || got[0].SportTag != "nhl" {
		t.Fatalf("unexpected teams %+v", got)
	}
}

func TestDecodeTeamsRejectsBadShapes(t *testing.T) {
	inputs := []string{
		`{not json`,
		`{"id": 1}`,
		`[{"id": 1, "team": "", "type": "mlb"}]`,
		`[{"id": 1, "team": "Yankees"}]`,
	}
	for _, input := range inputs {
		if _, err := DecodeTeams(strings.NewReader(input), FormatJSON); !errors.Is(err, ErrFixture) {
			t.Fatalf("expected ErrFixture for %s, got %v", input, err)
		}
	}
}

func TestDecodeEventsVerbatim(t *testing.T) {
	input := `[
		{"id": "ufc_1", "sport": "MMA", "league": null, "promotion": "UFC", "teamA": null, "teamB": null,
		 "fighterA": "Jon Jones", "fighterB": "Stipe Miocic", "start": "2024-05-03T02:00:00Z", "status": "Scheduled", "venue": null},
		{"id": "nhl_1", "sport": "Hockey", "league": "NHL", "teamA": "New York Rangers", "teamB": "Boston Bruins",
		 "start": "2024-05-01T23:00:00Z", "status": "Live", "venue": "Madison Square Garden"}
	]`

	got, err := DecodeEvents(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "ufc_1" || got[1].ID != "nhl_1" {
		t.Fatalf("expected input order preserved, got %+v", got)
	}
	if events.Value(got[0].Promotion) != "UFC" || got[0].Venue != nil {
		t.Fatalf("unexpected fight fields %+v", got[0])
	}
	if got[1].Status != events.StatusLive || events.Value(got[1].Venue) != "Madison Square Garden" {
		t.Fatalf("unexpected hockey fields %+v", got[1])
	}
}

func TestDecodeEventsYAML(t *testing.T) {
	input := "- id: mlb_1\n  sport: Baseball\n  league: MLB\n  teamA: Chicago Cubs\n  teamB: St. Louis Cardinals\n  start: \"2024-05-01T18:20:00Z\"\n  status: Scheduled\n"

	got, err := DecodeEvents(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || events.Value(got[0].TeamA) != "Chicago Cubs" || got[0].Start != "2024-05-01T18:20:00Z" {
		t.Fatalf("unexpected events %+v", got)
	}
}

func TestDecodeEventsRejectsInvalidEvents(t *testing.T) {
	inputs := []string{
		`[{"id": "x", "sport": "Baseball", "start": "2024-05-01T23:00:00Z"}]`,
		`[{"id": "x", "sport": "Baseball", "teamA": "A", "teamB": "B", "fighterA": "C", "fighterB": "D", "start": "2024-05-01T23:00:00Z"}]`,
		`[{"id": "x", "sport": "Baseball", "teamA": "A", "teamB": "B", "start": "tomorrow"}]`,
		`not json`,
	}
	for _, input := range inputs {
		if _, err := DecodeEvents(strings.NewReader(input), FormatJSON); !errors.Is(err, ErrFixture) {
			t.Fatalf("expected ErrFixture for %s, got %v", input, err)
		}
	}
}

func TestDecodeEventsEmptyArray(t *testing.T) {
	got, err := DecodeEvents(strings.NewReader(`[]`), FormatJSON)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %v %v", got, err)
	}
}
