package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"sports-hub-service/internal/logging"
	"sports-hub-service/internal/metrics"
	"sports-hub-service/internal/testutil"
)

func TestRequestLoggerTagsRequestAndLogs(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		if logging.FromContext(r.Context(), nil) == nil {
			t.Fatalf("expected request logger in context")
		}
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	rr := testutil.Serve(RequestLogger(logger, metrics.NewRecorder())(next), http.MethodGet, "/api/events?timeframe=week", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	out := buf.String()
	for _, want := range []string{"request complete", "status_code=418", "query=timeframe=week", "bytes=15", "level=WARN"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log, got %s", want, out)
		}
	}
}

func TestRequestLoggerLogsServerErrorsAtErrorLevel(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	testutil.Serve(RequestLogger(logger, nil)(next), http.MethodGet, "/api/events", nil)
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Fatalf("expected error level for 502, got %s", buf.String())
	}
}

func TestRequestLoggerGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := testutil.Serve(RequestLogger(logger, nil)(next), http.MethodGet, "/health", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestRequestLoggerKeepsValidIncomingID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "client-id-1" {
			t.Fatalf("expected incoming id, got %s", got)
		}
	})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "client-id-1")

	rr := testutil.ServeRequest(RequestLogger(logger, nil)(next), req)
	if rr.Header().Get("X-Request-ID") != "client-id-1" {
		t.Fatalf("expected echoed request id")
	}
}

func TestRequestLoggerDefaultsLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rr := testutil.Serve(RequestLogger(nil, nil)(next), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRoutePatternUsesChiPattern(t *testing.T) {
	var seen string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			seen = routePattern(req)
		})
	})
	r.Get("/api/events/{id}", func(w http.ResponseWriter, r *http.Request) {})

	testutil.Serve(r, http.MethodGet, "/api/events/mlb_1", nil)
	if seen != "/api/events/{id}" {
		t.Fatalf("expected chi pattern, got %q", seen)
	}

	testutil.Serve(r, http.MethodGet, "/nowhere", nil)
	if seen != unmatchedRoute {
		t.Fatalf("expected unmatched label, got %q", seen)
	}
}

func TestRoutePatternWithoutChi(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/events/1", nil)
	if got := routePattern(req); got != unmatchedRoute {
		t.Fatalf("expected unmatched without chi context, got %s", got)
	}
}

func TestStatusWriterKeepsFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &statusWriter{ResponseWriter: rr}
	if w.Status() != http.StatusOK {
		t.Fatalf("expected implicit 200, got %d", w.Status())
	}
	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)
	if w.Status() != http.StatusAccepted || w.Unwrap() != rr {
		t.Fatalf("expected first status 202 to stick, got %d", w.Status())
	}
}

func TestLevelFor(t *testing.T) {
	cases := map[int]slog.Level{
		http.StatusOK:                  slog.LevelInfo,
		http.StatusNotModified:         slog.LevelInfo,
		http.StatusNotFound:            slog.LevelWarn,
		http.StatusServiceUnavailable:  slog.LevelError,
		http.StatusInternalServerError: slog.LevelError,
	}
	for status, want := range cases {
		if got := levelFor(status); got != want {
			t.Fatalf("levelFor(%d) = %s, want %s", status, got, want)
		}
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}
	ctx := context.WithValue(context.Background(), requestIDKey{}, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}
}

func BenchmarkRequestLogger(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := RequestLogger(logger, metrics.NewRecorder())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/events", nil))
	}
}
