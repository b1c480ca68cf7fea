package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/logging"
	"sports-hub-service/internal/metrics"
)

// AdapterOptions tunes the soft wrapper around an upstream provider.
type AdapterOptions struct {
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	// Timeout bounds a single upstream fetch. Zero means the caller's context alone.
	Timeout time.Duration
}

// LeagueAdapter turns a ScheduleProvider into a source that never fails:
// transport errors, bad statuses, malformed payloads and panics all become an empty list.
type LeagueAdapter struct {
	name    string
	inner   ScheduleProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	timeout time.Duration
	now     func() time.Time
}

// NewLeagueAdapter wraps inner under the given provider name.
func NewLeagueAdapter(name string, inner ScheduleProvider, opts AdapterOptions) *LeagueAdapter {
	return &LeagueAdapter{
		name:    name,
		inner:   inner,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		timeout: opts.Timeout,
		now:     time.Now,
	}
}

// Name returns the provider name used in logs and metrics.
func (a *LeagueAdapter) Name() string {
	return a.name
}

// FetchSchedule returns the normalized events for [startDate, endDate], or an empty list on any failure.
func (a *LeagueAdapter) FetchSchedule(ctx context.Context, startDate, endDate string) []events.Event {
	if a == nil || a.inner == nil {
		return []events.Event{}
	}

	fetchCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := a.now()
	list, err := a.safeFetch(fetchCtx, startDate, endDate)
	elapsed := a.now().Sub(start)
	if err != nil {
		list = nil
	}
	a.metrics.RecordProviderAttempt(a.name, elapsed, len(list), err)

	logger := a.loggerFor(ctx)
	if err != nil {
		args := []any{
			logging.FieldStartDate, startDate,
			logging.FieldEndDate, endDate,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			logging.FieldError, err,
		}
		if up, ok := AsUpstreamError(err); ok {
			args = append(args, logging.FieldStatusCode, up.StatusCode)
		}
		logging.Warn(logger, "league fetch failed", args...)
		return []events.Event{}
	}

	logging.Debug(logger, "league fetch complete",
		logging.FieldCount, len(list),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	if list == nil {
		return []events.Event{}
	}
	return list
}

func (a *LeagueAdapter) safeFetch(ctx context.Context, startDate, endDate string) (list []events.Event, err error) {
	defer func() {
		if r := recover(); r != nil {
			list = nil
			err = fmt.Errorf("%w: %s panicked: %v", ErrProviderUnavailable, a.name, r)
		}
	}()
	return a.inner.FetchEvents(ctx, startDate, endDate)
}

func (a *LeagueAdapter) loggerFor(ctx context.Context) *slog.Logger {
	logger := logging.FromContext(ctx, a.logger)
	if logger == nil {
		return nil
	}
	return logger.With(logging.FieldProvider, a.name)
}
