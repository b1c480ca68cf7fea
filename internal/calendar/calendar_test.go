package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"sports-hub-service/internal/domain/events"
)

func TestExportRoundTripsThroughParser(t *testing.T) {
	list := []events.Event{
		{
			ID:     "mlb_100",
			Sport:  "Baseball",
			League: events.String("MLB"),
			TeamA:  events.String("New York Yankees"),
			TeamB:  events.String("Boston Red Sox"),
			Start:  "2024-05-01T23:05:00Z",
			Status: events.StatusScheduled,
			Venue:  events.String("Fenway Park"),
		},
		{
			ID:        "ufc_1",
			Sport:     "MMA",
			Promotion: events.String("UFC"),
			FighterA:  events.String("Jon Jones"),
			FighterB:  events.String("Stipe Miocic"),
			Start:     "2024-05-03T02:00:00Z",
			Status:    events.StatusPostponed,
		},
		{ID: "broken", TeamA: events.String("A"), TeamB: events.String("B"), Start: "never"},
	}

	var buf bytes.Buffer
	if err := Export(&buf, list, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(buf.String(), "METHOD:PUBLISH") {
		t.Fatalf("expected publish method in output:\n%s", buf.String())
	}

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("expected parseable calendar, got %v", err)
	}
	vevents := cal.Events()
	if len(vevents) != 2 {
		t.Fatalf("expected unparsable start to be skipped, got %d events", len(vevents))
	}

	first := vevents[0]
	if got := first.GetProperty(ical.ComponentPropertySummary).Value; got != "MLB: New York Yankees vs Boston Red Sox" {
		t.Fatalf("unexpected summary %q", got)
	}
	if got := first.GetProperty(ical.ComponentPropertyLocation).Value; got != "Fenway Park" {
		t.Fatalf("unexpected location %q", got)
	}
	start, err := first.GetStartAt()
	if err != nil || !start.Equal(time.Date(2024, 5, 1, 23, 5, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v %v", start, err)
	}

	second := vevents[1]
	if got := second.GetProperty(ical.ComponentPropertySummary).Value; got != "UFC: Jon Jones vs Stipe Miocic" {
		t.Fatalf("unexpected summary %q", got)
	}
	if second.GetProperty(ical.ComponentPropertyLocation) != nil {
		t.Fatalf("expected no location for unknown venue")
	}
	if got := second.GetProperty(ical.ComponentPropertyStatus).Value; got != "CANCELLED" {
		t.Fatalf("expected postponed to map to CANCELLED, got %q", got)
	}
}

func TestFilename(t *testing.T) {
	cases := map[string]string{
		"":           "sports-hub.ics",
		"all":        "sports-hub.ics",
		"Baseball":   "sports-hub-baseball.ics",
		"Ice Hockey": "sports-hub-ice-hockey.ics",
	}
	for in, want := range cases {
		if got := Filename(in); got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
}
