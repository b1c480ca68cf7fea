package metrics

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of one provider's counters.
type Snapshot struct {
	Calls           int
	Errors          int
	Events          int
	LastCallLatency time.Duration
}

type cacheKey struct {
	origin  string
	outcome string
}

// Recorder keeps in-memory counters for provider fetches, aggregation passes and
// offline cache outcomes. When built by Setup it also forwards every observation
// to OpenTelemetry. All methods are safe on a nil Recorder.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]Snapshot
	cache     map[cacheKey]int
	runs      int
	fallbacks int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]Snapshot),
		cache:     make(map[cacheKey]int),
		otel:      otel,
	}
}

// RecordProviderAttempt counts one adapter fetch, the events it produced and its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, count int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	snap := r.providers[provider]
	snap.Calls++
	snap.Events += count
	snap.LastCallLatency = duration
	if err != nil {
		snap.Errors++
	}
	r.providers[provider] = snap
	r.mu.Unlock()

	r.otel.recordProviderAttempt(provider, duration, err)
}

// RecordAggregation tracks one event-list build and whether the fallback fixture was used.
func (r *Recorder) RecordAggregation(duration time.Duration, count int, fallback bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs++
	if fallback {
		r.fallbacks++
	}
	r.mu.Unlock()

	r.otel.recordAggregation(duration, count, fallback)
}

// RecordCacheEvent counts an offline cache outcome for a request origin class.
func (r *Recorder) RecordCacheEvent(origin, outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.cache[cacheKey{origin: origin, outcome: outcome}]++
	r.mu.Unlock()

	r.otel.recordCache(origin, outcome)
}

// RecordHTTPRequest is only exported to OpenTelemetry.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordReload is only exported to OpenTelemetry.
func (r *Recorder) RecordReload(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.otel.recordReload(duration, err)
}

func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns the counters for provider, or the zero value if it was never recorded.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.providers[provider]
}

// CacheEvents returns how many times an outcome was seen for an origin class.
func (r *Recorder) CacheEvents(origin, outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache[cacheKey{origin: origin, outcome: outcome}]
}

// Aggregations returns the number of builds and how many of them fell back to the fixture.
func (r *Recorder) Aggregations() (runs int, fallbacks int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs, r.fallbacks
}
