package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/domain/teams"
	"sports-hub-service/internal/logging"
	"sports-hub-service/internal/metrics"
	"sports-hub-service/internal/providers"
	"sports-hub-service/internal/timeutil"
)

// FallbackSource supplies the static events used when no adapter produced anything.
type FallbackSource interface {
	Fallback(ctx context.Context) ([]events.Event, error)
}

// Config wires the aggregator's collaborators.
type Config struct {
	Registry *providers.Registry
	Fallback FallbackSource
	Location *time.Location
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Aggregator merges every league adapter's output for the followed teams into one sorted list.
type Aggregator struct {
	registry *providers.Registry
	fallback FallbackSource
	loc      *time.Location
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

func New(cfg Config) *Aggregator {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{
		registry: cfg.Registry,
		fallback: cfg.Fallback,
		loc:      loc,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      time.Now,
	}
}

// Build runs one aggregation pass. Adapter failures never surface here; only a
// fallback fixture failure does, and only when the live result is empty.
func (a *Aggregator) Build(ctx context.Context, roster []teams.Team) ([]events.Event, error) {
	started := a.now()
	logger := logging.FromContext(ctx, a.logger)
	startDate, endDate := timeutil.MonthWindow(started, a.loc)

	groups := teams.PartitionBySport(roster)
	// One slot per partition keeps concatenation in registry order regardless of completion order.
	results := make([][]events.Event, len(groups))

	var wg sync.WaitGroup
	for i, group := range groups {
		adapter, err := a.registry.Get(group.SportTag)
		if errors.Is(err, providers.ErrNoAdapter) {
			logging.Debug(logger, "no adapter for sport", logging.FieldSport, group.SportTag)
			continue
		}
		wg.Add(1)
		go func(i int, group teams.Group, adapter providers.Adapter) {
			defer wg.Done()
			raw := adapter.FetchSchedule(ctx, startDate, endDate)
			results[i] = a.validOnly(logger, group.SportTag, providers.FilterForTeams(raw, group.Teams))
		}(i, group, adapter)
	}
	wg.Wait()

	merged := make([]events.Event, 0)
	for _, res := range results {
		merged = append(merged, res...)
	}

	usedFallback := false
	if len(merged) == 0 {
		if a.fallback == nil {
			return nil, errors.New("aggregator: no events and no fallback configured")
		}
		fallback, err := a.fallback.Fallback(ctx)
		if err != nil {
			return nil, fmt.Errorf("load fallback events: %w", err)
		}
		logging.Warn(logger, "no live events, using fallback fixture", logging.FieldCount, len(fallback))
		merged = append(merged, fallback...)
		usedFallback = true
	}

	events.SortByStart(merged)

	elapsed := a.now().Sub(started)
	a.metrics.RecordAggregation(elapsed, len(merged), usedFallback)
	logging.Info(logger, "event list built",
		logging.FieldCount, len(merged),
		logging.FieldStartDate, startDate,
		logging.FieldEndDate, endDate,
		logging.FieldDurationMS, elapsed.Milliseconds(),
		"fallback", usedFallback,
	)
	return merged, nil
}

// validOnly drops adapter output that breaks the canonical invariants.
func (a *Aggregator) validOnly(logger *slog.Logger, tag string, list []events.Event) []events.Event {
	out := list[:0]
	for _, ev := range list {
		if err := ev.Validate(); err != nil {
			logging.Warn(logger, "dropping malformed event", logging.FieldSport, tag, "error", err)
			continue
		}
		out = append(out, ev)
	}
	return out
}
