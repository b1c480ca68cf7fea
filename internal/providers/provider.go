package providers

import (
	"context"

	"sports-hub-service/internal/domain/events"
)

// ScheduleProvider fetches one league's schedule from its upstream and normalizes it.
// startDate and endDate are inclusive YYYY-MM-DD local dates. Errors are returned as-is;
// LeagueAdapter is responsible for absorbing them.
type ScheduleProvider interface {
	FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error)
}

// Adapter is the soft, never-failing view of a league source used by the aggregator.
type Adapter interface {
	FetchSchedule(ctx context.Context, startDate, endDate string) []events.Event
}
