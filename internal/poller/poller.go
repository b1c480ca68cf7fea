package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"sports-hub-service/internal/logging"
	"sports-hub-service/internal/metrics"
)

// Loader rebuilds the event list wholesale and reports how many events it holds.
type Loader interface {
	Load(ctx context.Context) (int, error)
}

// Config wires a Poller. An empty Schedule performs only the initial load.
type Config struct {
	Loader   Loader
	Schedule string
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Poller performs the startup load and optional cron-scheduled reloads.
type Poller struct {
	loader   Loader
	schedule string
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	cron     *cron.Cron
	startMu  sync.Mutex
	started  bool
	stopOnce sync.Once
	cancel   context.CancelFunc
	runCtx   context.Context
	initial  chan struct{}

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the reload loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
	LastCount           int       `json:"lastCount"`
}

// IsReady reports whether a load has succeeded and reloads are not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New validates the schedule. Standard five-field specs and descriptors like @hourly are accepted.
func New(cfg Config) (*Poller, error) {
	if cfg.Loader == nil {
		return nil, errors.New("poller: loader required")
	}
	schedule := strings.TrimSpace(cfg.Schedule)
	p := &Poller{
		loader:   cfg.Loader,
		schedule: schedule,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      time.Now,
		initial:  make(chan struct{}),
	}
	if schedule == "" {
		return p, nil
	}
	p.cron = cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := p.cron.AddFunc(schedule, p.runScheduled); err != nil {
		return nil, fmt.Errorf("poller: invalid reload schedule %q: %w", schedule, err)
	}
	return p, nil
}

// Start runs the initial load in the background and then starts the schedule.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	ctx, p.cancel = context.WithCancel(ctx)
	p.runCtx = ctx
	p.startMu.Unlock()

	go func() {
		p.logInfo("poller started", "schedule", p.schedule)
		p.Reload(ctx)
		if p.cron == nil {
			close(p.initial)
			return
		}
		if ctx.Err() == nil {
			p.cron.Start()
		}
		close(p.initial)
		<-ctx.Done()
		p.cron.Stop()
	}()
}

// Initial is closed once the startup load has finished.
func (p *Poller) Initial() <-chan struct{} {
	return p.initial
}

// Stop halts scheduling and waits, up to ctx's deadline, for the startup load
// and any running scheduled reload to finish.
func (p *Poller) Stop(ctx context.Context) error {
	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()

	p.stopOnce.Do(func() {
		p.startMu.Lock()
		if p.cancel != nil {
			p.cancel()
		}
		p.startMu.Unlock()
	})
	if !started {
		return nil
	}

	select {
	case <-p.initial:
	case <-ctx.Done():
		return ctx.Err()
	}
	if p.cron != nil {
		select {
		case <-p.cron.Stop().Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.logInfo("poller stopped")
	return nil
}

func (p *Poller) runScheduled() {
	p.Reload(p.runCtx)
}

// Reload runs one wholesale load and records the outcome.
func (p *Poller) Reload(ctx context.Context) (int, error) {
	start := p.now()
	p.recordAttempt(start)
	count, err := p.loader.Load(ctx)
	elapsed := time.Since(start)
	p.metrics.RecordReload(elapsed, err)
	if err != nil {
		p.logError("event reload failed", err, logging.FieldDurationMS, elapsed.Milliseconds())
		p.recordFailure(err, start)
		return 0, err
	}
	p.recordSuccess(start, count)
	p.logInfo("events reloaded",
		logging.FieldCount, count,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return count, nil
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	logging.Error(p.logger, msg, err, attrs...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, count int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastCount = count
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
