package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	appevents "sports-hub-service/internal/app/events"
	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/providers"
)

func TestNowAtIsFixed(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := NowAt(now)
	if !clock().Equal(now) || !clock().Equal(now) {
		t.Fatalf("expected fixed time")
	}
}

func TestFixturesHelper(t *testing.T) {
	e := SampleEvent("mlb_1", "MLB", "MLB", "Red Sox", "Yankees", "2024-05-01T23:05:00Z")
	if err := e.Validate(); err != nil {
		t.Fatalf("expected valid event fixture, got %v", err)
	}
	f := SampleFight("ufc_1", "UFC", "A", "B", "2024-05-02T02:00:00Z")
	if err := f.Validate(); err != nil {
		t.Fatalf("expected valid fight fixture, got %v", err)
	}
	team := SampleTeam("Yankees", "mlb")
	if team.DisplayName != "Yankees" || team.SportTag != "mlb" || team.League != "MLB" {
		t.Fatalf("unexpected team fixture %+v", team)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestWithURLParams(t *testing.T) {
	req := WithURLParams(httptest.NewRequest(http.MethodGet, "/api/events/mlb_1", nil), "id", "mlb_1", "dangling")
	if got := chi.URLParam(req, "id"); got != "mlb_1" {
		t.Fatalf("expected id param, got %q", got)
	}
	if got := chi.URLParam(req, "dangling"); got != "" {
		t.Fatalf("expected odd trailing key to be ignored, got %q", got)
	}
}

func TestServiceHelpers(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	list := []events.Event{SampleEvent("mlb_1", "MLB", "MLB", "Red Sox", "Yankees", "2024-05-01T23:05:00Z")}
	svc := NewServiceWithEvents(list, now)
	if err := svc.Ready(); err != nil {
		t.Fatalf("expected loaded service, got %v", err)
	}
	if !svc.Now().Equal(now) {
		t.Fatalf("expected pinned clock")
	}
	if got := svc.Events(); len(got) != 1 || got[0].ID != "mlb_1" {
		t.Fatalf("expected loaded events, got %+v", got)
	}

	boom := errors.New("boom")
	unloaded := NewUnloadedService(boom)
	if err := unloaded.Ready(); !errors.Is(err, appevents.ErrNotLoaded) {
		t.Fatalf("expected not loaded, got %v", err)
	}
}

func TestServerStubs(t *testing.T) {
	p := &StubPoller{Err: errors.New("stop"), ReloadCount: 2}
	p.Start(context.Background())
	if err := p.Stop(context.Background()); !errors.Is(err, p.Err) {
		t.Fatalf("expected stop error")
	}
	if n, err := p.Reload(context.Background()); n != 2 || err != nil {
		t.Fatalf("expected reload passthrough, got %d %v", n, err)
	}
	if p.StartCalls != 1 || p.StopCalls != 1 || p.ReloadCalls != 1 {
		t.Fatalf("unexpected call counts %+v", p)
	}
	if p.Status() != p.StatusVal {
		t.Fatalf("expected status passthrough")
	}

	w := &StubCacheWorker{Err: errors.New("install")}
	if err := w.Start(context.Background()); !errors.Is(err, w.Err) || w.StartCalls != 1 {
		t.Fatalf("expected worker start error passthrough")
	}

	sh := &StubHTTPServer{ServeErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.Serve(nil)
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ServeCalls() != 1 || sh.ShutdownCalls() != 1 {
		t.Fatalf("expected serve/shutdown calls")
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.Serve(nil); err != nil {
		t.Fatalf("expected nil serve error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown called once")
	}

	e := &ErrHTTPServer{}
	if err := e.Serve(nil); err == nil {
		t.Fatalf("expected serve error")
	}
	_ = e.Shutdown(context.Background())
	if e.Addr() == "" || e.Handler() == nil || e.ShutdownCalls != 1 {
		t.Fatalf("unexpected ErrHTTPServer state %+v", e)
	}
}

func TestBufferLoggerCapturesDebug(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "k", "v")
	if !strings.Contains(buf.String(), "k=v") {
		t.Fatalf("expected buffered debug output, got %q", buf.String())
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	good := GoodProvider{Events: []events.Event{{ID: "e1"}}}
	if got, err := good.FetchEvents(ctx, "", ""); err != nil || len(got) != 1 {
		t.Fatalf("expected events from GoodProvider")
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchEvents(ctx, "", ""); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	empty := EmptyProvider{}
	if got, err := empty.FetchEvents(ctx, "", ""); err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v err %v", got, err)
	}

	unavail := UnavailableProvider{}
	if _, err := unavail.FetchEvents(ctx, "", ""); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}

	rec := &RecordingProvider{}
	_, _ = rec.FetchEvents(ctx, "2024-05-01", "2024-05-08")
	if got := rec.Ranges(); len(got) != 1 || got[0] != [2]string{"2024-05-01", "2024-05-08"} {
		t.Fatalf("unexpected recorded ranges %v", got)
	}
}
