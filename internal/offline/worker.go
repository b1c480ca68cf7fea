package offline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"sports-hub-service/internal/logging"
	"sports-hub-service/internal/metrics"
)

// State is the worker's lifecycle position.
type State string

const (
	StateNew        State = "new"
	StateInstalling State = "installing"
	StateInstalled  State = "installed"
	StateActivating State = "activating"
	StateActive     State = "active"
	StateRedundant  State = "redundant"
)

const defaultFetchTimeout = 10 * time.Second

// ErrNotInstalled is returned by Activate before a successful Install.
var ErrNotInstalled = errors.New("offline: worker not installed")

// WorkerConfig wires a Worker.
type WorkerConfig struct {
	Version  string
	Origin   string
	Manifest []string
	Storage  Storage
	// HTTPClient fetches manifest assets during install. It must reach the network directly.
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Worker owns the versioned bucket lifecycle: Install seeds it, Activate prunes
// older versions and starts intercepting through Transport.
type Worker struct {
	version  string
	origin   *url.URL
	manifest []string
	storage  Storage
	client   *http.Client
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	mu          sync.RWMutex
	state       State
	controlling bool
}

// NewWorker validates the origin and applies defaults.
func NewWorker(cfg WorkerConfig) (*Worker, error) {
	origin, err := url.Parse(strings.TrimSuffix(cfg.Origin, "/"))
	if err != nil || origin.Scheme == "" || origin.Host == "" {
		return nil, fmt.Errorf("offline: invalid origin %q", cfg.Origin)
	}
	if cfg.Storage == nil {
		return nil, errors.New("offline: storage required")
	}
	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}
	manifest := cfg.Manifest
	if manifest == nil {
		manifest = DefaultManifest
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &Worker{
		version:  version,
		origin:   origin,
		manifest: append([]string(nil), manifest...),
		storage:  cfg.Storage,
		client:   client,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      time.Now,
		state:    StateNew,
	}, nil
}

// Version returns the bucket name this worker owns.
func (w *Worker) Version() string {
	return w.version
}

// State reports the lifecycle position.
func (w *Worker) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

// Controlling reports whether Transport currently intercepts requests.
func (w *Worker) Controlling() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.controlling
}

func (w *Worker) setState(s State) {
	w.mu.Lock()
	w.state = s
	w.mu.Unlock()
}

// Install fetches every manifest asset and stores them only when all succeeded.
// A failed install leaves the worker redundant and the storage untouched.
func (w *Worker) Install(ctx context.Context) error {
	w.setState(StateInstalling)
	logger := logging.FromContext(ctx, w.logger)

	type fetched struct {
		key  string
		resp StoredResponse
	}
	seeded := make([]fetched, 0, len(w.manifest))
	for _, p := range w.manifest {
		target := w.resolve(p)
		stored, err := w.fetchAsset(ctx, target)
		if err != nil {
			w.setState(StateRedundant)
			logging.Error(logger, "offline install failed", err, logging.FieldBucket, w.version, logging.FieldURL, target.String())
			return fmt.Errorf("offline: install %s: %w", w.version, err)
		}
		seeded = append(seeded, fetched{key: Key(http.MethodGet, target), resp: stored})
	}

	bucket, err := w.storage.Open(ctx, w.version)
	if err != nil {
		w.setState(StateRedundant)
		return fmt.Errorf("offline: open bucket %s: %w", w.version, err)
	}
	for _, item := range seeded {
		if err := bucket.Put(ctx, item.key, item.resp); err != nil {
			w.setState(StateRedundant)
			if _, delErr := w.storage.Delete(ctx, w.version); delErr != nil {
				logging.Error(logger, "offline install rollback failed", delErr, logging.FieldBucket, w.version)
			}
			return fmt.Errorf("offline: seed %s: %w", w.version, err)
		}
	}

	w.setState(StateInstalled)
	logging.Info(logger, "offline assets cached", logging.FieldBucket, w.version, logging.FieldCount, len(seeded))
	return nil
}

func (w *Worker) fetchAsset(ctx context.Context, target *url.URL) (StoredResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return StoredResponse{}, err
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return StoredResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return StoredResponse{}, fmt.Errorf("%s: unexpected status %d", target, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return StoredResponse{}, err
	}
	return Capture(resp, body, w.now()), nil
}

// Activate deletes every bucket except the current version and takes control immediately.
func (w *Worker) Activate(ctx context.Context) error {
	w.mu.Lock()
	if w.state != StateInstalled && w.state != StateActive {
		w.mu.Unlock()
		return ErrNotInstalled
	}
	w.state = StateActivating
	w.mu.Unlock()

	logger := logging.FromContext(ctx, w.logger)
	names, err := w.storage.Names(ctx)
	if err != nil {
		w.setState(StateInstalled)
		return fmt.Errorf("offline: list buckets: %w", err)
	}
	for _, name := range names {
		if name == w.version {
			continue
		}
		if _, err := w.storage.Delete(ctx, name); err != nil {
			w.setState(StateInstalled)
			return fmt.Errorf("offline: delete bucket %s: %w", name, err)
		}
		logging.Info(logger, "deleted old offline cache", logging.FieldBucket, name)
	}

	w.mu.Lock()
	w.state = StateActive
	w.controlling = true
	w.mu.Unlock()
	logging.Info(logger, "offline cache active", logging.FieldBucket, w.version)
	return nil
}

// Start runs Install followed by Activate.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.Install(ctx); err != nil {
		return err
	}
	return w.Activate(ctx)
}

// Status summarizes the worker for diagnostics.
type Status struct {
	Version     string   `json:"version"`
	State       State    `json:"state"`
	Controlling bool     `json:"controlling"`
	Buckets     []string `json:"buckets"`
	Entries     int      `json:"entries"`
}

// Status reports the lifecycle plus what storage currently holds.
func (w *Worker) Status(ctx context.Context) (Status, error) {
	st := Status{Version: w.version, State: w.State(), Controlling: w.Controlling()}
	names, err := w.storage.Names(ctx)
	if err != nil {
		return st, err
	}
	st.Buckets = names
	for _, name := range names {
		if name != w.version {
			continue
		}
		bucket, err := w.storage.Open(ctx, name)
		if err != nil {
			return st, err
		}
		keys, err := bucket.Keys(ctx)
		if err != nil {
			return st, err
		}
		st.Entries = len(keys)
	}
	return st, nil
}

func (w *Worker) resolve(p string) *url.URL {
	ref, err := url.Parse(p)
	if err != nil {
		ref = &url.URL{Path: p}
	}
	return w.origin.ResolveReference(ref)
}

// sameOrigin compares scheme and host (including port).
func (w *Worker) sameOrigin(u *url.URL) bool {
	if u == nil {
		return false
	}
	return strings.EqualFold(u.Scheme, w.origin.Scheme) && strings.EqualFold(u.Host, w.origin.Host)
}
