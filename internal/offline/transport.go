package offline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"sports-hub-service/internal/logging"
	"sports-hub-service/internal/metrics"
)

// Transport intercepts GET requests once the worker controls clients.
// Same-origin requests are cache-first; cross-origin requests are network-first
// with the cached copy as a stale fallback.
type Transport struct {
	worker *Worker
	next   http.RoundTripper
}

// Transport wraps next (http.DefaultTransport when nil) with the offline cache.
func (w *Worker) Transport(next http.RoundTripper) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{worker: w, next: next}
}

// Client returns an *http.Client routed through the offline cache.
func (w *Worker) Client(next http.RoundTripper) *http.Client {
	return &http.Client{Transport: w.Transport(next)}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet || !t.worker.Controlling() {
		return t.next.RoundTrip(req)
	}
	// Cache bookkeeping outlives a cancelled caller so a stale copy can still be served.
	ctx := context.WithoutCancel(req.Context())
	bucket, err := t.worker.storage.Open(ctx, t.worker.version)
	if err != nil {
		logging.Error(t.logger(req), "offline bucket unavailable", err, logging.FieldBucket, t.worker.version)
		return t.next.RoundTrip(req)
	}

	if t.worker.sameOrigin(req.URL) {
		return t.cacheFirst(ctx, bucket, req)
	}
	return t.networkFirst(ctx, bucket, req)
}

func (t *Transport) cacheFirst(ctx context.Context, bucket Bucket, req *http.Request) (*http.Response, error) {
	logger := t.logger(req)
	key := RequestKey(req)

	stored, err := bucket.Match(ctx, key)
	if err == nil {
		t.record(metrics.OriginSame, metrics.CacheHit)
		logging.Debug(logger, "serving from offline cache", logging.FieldURL, req.URL.String())
		return stored.Response(req), nil
	}
	if !errors.Is(err, ErrNoMatch) {
		logging.Warn(logger, "offline cache lookup failed", logging.FieldURL, req.URL.String(), "error", err)
	}
	t.record(metrics.OriginSame, metrics.CacheMiss)

	resp, netErr := t.next.RoundTrip(req)
	if netErr != nil {
		return t.documentFallback(ctx, bucket, req, netErr)
	}
	if resp.StatusCode != http.StatusOK || !t.basic(req) {
		return resp, nil
	}

	body, err := bufferBody(resp)
	if err != nil {
		return nil, err
	}
	t.store(ctx, bucket, key, Capture(resp, body, t.worker.now()), metrics.OriginSame, logger)
	return resp, nil
}

func (t *Transport) networkFirst(ctx context.Context, bucket Bucket, req *http.Request) (*http.Response, error) {
	logger := t.logger(req)
	key := RequestKey(req)

	resp, netErr := t.next.RoundTrip(req)
	if netErr != nil {
		stored, err := bucket.Match(ctx, key)
		if err != nil {
			t.record(metrics.OriginRemote, metrics.CacheFailure)
			return nil, netErr
		}
		t.record(metrics.OriginRemote, metrics.CacheStale)
		logging.Warn(logger, "network failed, serving cached response", logging.FieldURL, req.URL.String(), "error", netErr)
		return stored.Response(req), nil
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := bufferBody(resp)
	if err != nil {
		return nil, err
	}
	t.store(ctx, bucket, key, Capture(resp, body, t.worker.now()), metrics.OriginRemote, logger)
	return resp, nil
}

// documentFallback serves the cached root document for navigations; other requests fail.
func (t *Transport) documentFallback(ctx context.Context, bucket Bucket, req *http.Request, netErr error) (*http.Response, error) {
	if isDocument(req) {
		stored, err := bucket.Match(ctx, Key(http.MethodGet, t.worker.resolve(documentPath)))
		if err == nil {
			t.record(metrics.OriginSame, metrics.CacheFallback)
			logging.Warn(t.logger(req), "network failed, serving cached document", logging.FieldURL, req.URL.String())
			return stored.Response(req), nil
		}
	}
	t.record(metrics.OriginSame, metrics.CacheFailure)
	return nil, fmt.Errorf("%w: %s: %v", ErrOffline, req.URL, netErr)
}

// basic reports whether every hop that led to req stayed on the worker's origin.
// http.Client follows redirects through separate round trips and links each hop
// to the previous one via req.Response, so a same-origin request reached through
// a cross-origin redirect is treated as opaque and not cached.
func (t *Transport) basic(req *http.Request) bool {
	for r := req; r != nil; {
		if !t.worker.sameOrigin(r.URL) {
			return false
		}
		if r.Response == nil {
			return true
		}
		r = r.Response.Request
	}
	return true
}

func (t *Transport) store(ctx context.Context, bucket Bucket, key string, stored StoredResponse, origin string, logger *slog.Logger) {
	if err := bucket.Put(ctx, key, stored); err != nil {
		logging.Error(logger, "offline cache write failed", err, logging.FieldURL, stored.URL)
		return
	}
	t.record(origin, metrics.CacheStore)
}

func (t *Transport) record(origin, outcome string) {
	t.worker.metrics.RecordCacheEvent(origin, outcome)
}

func (t *Transport) logger(req *http.Request) *slog.Logger {
	return logging.FromContext(req.Context(), t.worker.logger)
}

func isDocument(req *http.Request) bool {
	if strings.EqualFold(req.Header.Get("Sec-Fetch-Dest"), "document") {
		return true
	}
	return strings.Contains(req.Header.Get("Accept"), "text/html")
}
