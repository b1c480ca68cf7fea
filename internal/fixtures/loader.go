package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/domain/teams"
	"sports-hub-service/internal/logging"
)

// ErrFixture marks a missing or unparsable team/fallback fixture. It is fatal to a load.
var ErrFixture = errors.New("fixture unavailable")

const defaultHTTPTimeout = 10 * time.Second

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config locates the static fixtures on the asset origin.
type Config struct {
	Origin       string
	TeamsPath    string
	FallbackPath string
	// HTTPClient is normally the offline-cache-wrapped client so fixtures survive outages.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Loader fetches the team registry and fallback events as same-origin static assets.
type Loader struct {
	origin       string
	teamsPath    string
	fallbackPath string
	httpClient   httpDoer
	logger       *slog.Logger
}

func NewLoader(cfg Config) *Loader {
	var client httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Loader{
		origin:       strings.TrimSuffix(cfg.Origin, "/"),
		teamsPath:    cfg.TeamsPath,
		fallbackPath: cfg.FallbackPath,
		httpClient:   client,
		logger:       cfg.Logger,
	}
}

// Teams loads the followed-team registry.
func (l *Loader) Teams(ctx context.Context) ([]teams.Team, error) {
	var out []teams.Team
	err := l.fetch(ctx, l.teamsPath, func(r io.Reader, format Format) error {
		var err error
		out, err = DecodeTeams(r, format)
		return err
	})
	if err != nil {
		return nil, err
	}
	logging.Debug(logging.FromContext(ctx, l.logger), "team registry loaded", logging.FieldCount, len(out))
	return out, nil
}

// Fallback loads the canonical events used when no adapter produced anything.
func (l *Loader) Fallback(ctx context.Context) ([]events.Event, error) {
	var out []events.Event
	err := l.fetch(ctx, l.fallbackPath, func(r io.Reader, format Format) error {
		var err error
		out, err = DecodeEvents(r, format)
		return err
	})
	if err != nil {
		return nil, err
	}
	logging.Info(logging.FromContext(ctx, l.logger), "fallback fixture loaded", logging.FieldCount, len(out))
	return out, nil
}

func (l *Loader) fetch(ctx context.Context, p string, decode func(io.Reader, Format) error) error {
	target := l.origin + p
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFixture, target, err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFixture, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: unexpected status %d: %s", ErrFixture, target, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := decode(resp.Body, FormatFor(p)); err != nil {
		return fmt.Errorf("%s: %w", target, err)
	}
	return nil
}
