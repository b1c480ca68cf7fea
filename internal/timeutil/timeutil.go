package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns local midnight for the calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseInstant parses an ISO-8601 timestamp as sent by upstream schedules and fixtures.
func ParseInstant(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}
	// Some fixtures omit the seconds component ("2024-05-01T19:05Z").
	if alt, altErr := time.Parse("2006-01-02T15:04Z07:00", value); altErr == nil {
		return alt, nil
	}
	return time.Time{}, err
}

// MonthWindow returns the [today, today+1 calendar month] date pair in loc.
func MonthWindow(now time.Time, loc *time.Location) (string, string) {
	if loc == nil {
		loc = time.Local
	}
	start := StartOfDay(now.In(loc))
	return FormatDate(start), FormatDate(start.AddDate(0, 1, 0))
}
