package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainevents "sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/domain/teams"
	"sports-hub-service/internal/filter"
	"sports-hub-service/internal/logging"
)

// ErrNotLoaded is reported until the first successful load completes.
var ErrNotLoaded = errors.New("events not loaded yet")

// Store defines the contract for holding the canonical event list.
type Store interface {
	ListEvents() []domainevents.Event
	GetEvent(id string) (domainevents.Event, bool)
	SetEvents(list []domainevents.Event)
}

// RosterSource loads the followed-team registry.
type RosterSource interface {
	Teams(ctx context.Context) ([]teams.Team, error)
}

// Builder turns the registry into a sorted canonical list.
type Builder interface {
	Build(ctx context.Context, roster []teams.Team) ([]domainevents.Event, error)
}

// Config wires the service.
type Config struct {
	Store    Store
	Roster   RosterSource
	Builder  Builder
	Location *time.Location
	Logger   *slog.Logger
	// Clock overrides time.Now; tests pin it.
	Clock func() time.Time
}

// Service loads events through the aggregator and answers read/filter queries.
type Service struct {
	store   Store
	roster  RosterSource
	builder Builder
	loc     *time.Location
	logger  *slog.Logger
	now     func() time.Time

	loadMu sync.Mutex

	stateMu  sync.RWMutex
	teams    []teams.Team
	loaded   bool
	loadedAt time.Time
	lastErr  error
}

// NewService constructs a Service with the provided collaborators.
func NewService(cfg Config) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		store:   cfg.Store,
		roster:  cfg.Roster,
		builder: cfg.Builder,
		loc:     loc,
		logger:  cfg.Logger,
		now:     clock,
	}
}

// Load builds a fresh event list and swaps it in. Loads are serialized. The team
// registry is read once and reused by later reloads. On failure the previous list
// stays in place.
func (s *Service) Load(ctx context.Context) (int, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.teams == nil {
		roster, err := s.roster.Teams(ctx)
		if err != nil {
			return 0, s.fail(ctx, fmt.Errorf("load team registry: %w", err))
		}
		s.stateMu.Lock()
		s.teams = roster
		s.stateMu.Unlock()
	}

	list, err := s.builder.Build(ctx, s.teams)
	if err != nil {
		return 0, s.fail(ctx, err)
	}

	s.store.SetEvents(list)

	s.stateMu.Lock()
	s.loaded = true
	s.loadedAt = s.now()
	s.lastErr = nil
	s.stateMu.Unlock()

	return len(list), nil
}

func (s *Service) fail(ctx context.Context, err error) error {
	s.stateMu.Lock()
	s.lastErr = err
	s.stateMu.Unlock()
	logging.Error(logging.FromContext(ctx, s.logger), "failed to load events data", err)
	return err
}

// Ready returns nil once a list has been loaded. Before that it returns the last
// load error, or ErrNotLoaded when no load has finished.
func (s *Service) Ready() error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.loaded {
		return nil
	}
	if s.lastErr != nil {
		return s.lastErr
	}
	return ErrNotLoaded
}

// LastError returns the error from the most recent load, if it failed.
func (s *Service) LastError() error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.lastErr
}

// LoadedAt returns when the current list was swapped in.
func (s *Service) LoadedAt() time.Time {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.loadedAt
}

// Teams returns the followed-team registry, empty until the first load.
func (s *Service) Teams() []teams.Team {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	out := make([]teams.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

// Events returns the full canonical list.
func (s *Service) Events() []domainevents.Event {
	return s.store.ListEvents()
}

// EventByID returns a single event if present.
func (s *Service) EventByID(id string) (domainevents.Event, bool) {
	return s.store.GetEvent(id)
}

// Filter runs the filter engine against the current list at the service's local time.
func (s *Service) Filter(c filter.Context) []domainevents.Event {
	return filter.Apply(s.store.ListEvents(), c, s.Now())
}

// Sports lists the distinct sport labels in the current list.
func (s *Service) Sports() []string {
	return filter.Sports(s.store.ListEvents())
}

// Now returns the current time in the service's timezone.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

// Location returns the timezone used for windows and labels.
func (s *Service) Location() *time.Location {
	return s.loc
}
