package testutil

import (
	"context"
	"time"

	appevents "sports-hub-service/internal/app/events"
	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/domain/teams"
	"sports-hub-service/internal/store"
)

// NowAt returns a clock fixed at t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// StaticRoster serves a fixed team registry.
type StaticRoster []teams.Team

func (r StaticRoster) Teams(ctx context.Context) ([]teams.Team, error) {
	return r, nil
}

// StaticBuilder returns the configured list or error from Build.
type StaticBuilder struct {
	Events []events.Event
	Err    error
}

func (b StaticBuilder) Build(ctx context.Context, roster []teams.Team) ([]events.Event, error) {
	return b.Events, b.Err
}

// NewServiceWithEvents builds an events service already loaded with list, pinned to now in UTC.
func NewServiceWithEvents(list []events.Event, now time.Time) *appevents.Service {
	svc := appevents.NewService(appevents.Config{
		Store:    store.NewEventStore(),
		Roster:   StaticRoster{},
		Builder:  StaticBuilder{Events: list},
		Location: time.UTC,
		Clock:    NowAt(now),
	})
	if _, err := svc.Load(context.Background()); err != nil {
		panic(err)
	}
	return svc
}

// NewUnloadedService builds a service whose loads always fail with err.
func NewUnloadedService(err error) *appevents.Service {
	return appevents.NewService(appevents.Config{
		Store:    store.NewEventStore(),
		Roster:   StaticRoster{},
		Builder:  StaticBuilder{Err: err},
		Location: time.UTC,
	})
}
