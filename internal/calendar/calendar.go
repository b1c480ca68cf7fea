package calendar

import (
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"sports-hub-service/internal/domain/events"
)

const (
	productID = "-//sports-hub-service//schedule//EN"
	uidDomain = "@sports-hub-service"
	// Schedules carry no end time; a fixed block keeps calendar clients happy.
	defaultDuration = 3 * time.Hour
)

// Build converts events into a PUBLISH calendar. Events whose start cannot be parsed are skipped.
func Build(list []events.Event, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, ev := range list {
		start, err := ev.StartTime()
		if err != nil {
			continue
		}
		a, b := ev.Sides()

		vev := cal.AddEvent(ev.ID + uidDomain)
		vev.SetDtStampTime(stamp.UTC())
		vev.SetStartAt(start.UTC())
		vev.SetEndAt(start.Add(defaultDuration).UTC())
		vev.SetSummary(summary(ev, a, b))
		if venue := events.Value(ev.Venue); venue != "" {
			vev.SetLocation(venue)
		}
		vev.SetDescription(string(ev.Status))
		if status := icalStatus(ev.Status); status != "" {
			vev.SetProperty(ical.ComponentPropertyStatus, status)
		}
		if ev.Sport != "" {
			vev.SetProperty(ical.ComponentPropertyCategories, ev.Sport)
		}
	}
	return cal
}

// Export writes the serialized calendar to w.
func Export(w io.Writer, list []events.Event, stamp time.Time) error {
	_, err := io.WriteString(w, Build(list, stamp).Serialize())
	return err
}

func summary(ev events.Event, a, b string) string {
	label := events.Value(ev.League)
	if label == "" {
		label = events.Value(ev.Promotion)
	}
	matchup := a + " vs " + b
	if label == "" {
		return matchup
	}
	return label + ": " + matchup
}

func icalStatus(s events.Status) string {
	switch s {
	case events.StatusCancelled, events.StatusPostponed:
		return "CANCELLED"
	case events.StatusScheduled, events.StatusLive, events.StatusFinal, events.StatusDelayed:
		return "CONFIRMED"
	default:
		return ""
	}
}

// ContentType is the media type served for Export output.
const ContentType = "text/calendar; charset=utf-8"

// Filename builds a download name such as "sports-hub-baseball.ics".
func Filename(sport string) string {
	sport = strings.ToLower(strings.TrimSpace(sport))
	if sport == "" || sport == "all" {
		return "sports-hub.ics"
	}
	return "sports-hub-" + strings.ReplaceAll(sport, " ", "-") + ".ics"
}
