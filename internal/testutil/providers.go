package testutil

import (
	"context"
	"sync"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/providers"
)

// GoodProvider returns the provided events with no error.
type GoodProvider struct {
	Events []events.Event
}

func (p GoodProvider) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	return p.Events, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	return nil, p.Err
}

// EmptyProvider returns no events, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	return []events.Event{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	return nil, providers.ErrProviderUnavailable
}

// RecordingProvider returns events and remembers the requested date range.
type RecordingProvider struct {
	Events []events.Event

	mu     sync.Mutex
	ranges [][2]string
}

func (p *RecordingProvider) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	p.mu.Lock()
	p.ranges = append(p.ranges, [2]string{startDate, endDate})
	p.mu.Unlock()
	return p.Events, nil
}

// Ranges returns every [startDate, endDate] pair requested so far.
func (p *RecordingProvider) Ranges() [][2]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][2]string, len(p.ranges))
	copy(out, p.ranges)
	return out
}
