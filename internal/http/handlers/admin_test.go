package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sports-hub-service/internal/testutil"
)

type stubReloader struct {
	count int
	err   error
	calls int
}

func (s *stubReloader) Reload(ctx context.Context) (int, error) {
	s.calls++
	return s.count, s.err
}

func adminRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminReloadRequiresAuth(t *testing.T) {
	reloader := &stubReloader{}
	h := NewAdminHandler(reloader, "secret", nil)

	for _, token := range []string{"", "wrong"} {
		rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), adminRequest(token))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	}
	if reloader.calls != 0 {
		t.Fatalf("expected no reload without auth")
	}
}

func TestAdminReloadDisabledWithoutToken(t *testing.T) {
	h := NewAdminHandler(&stubReloader{}, "", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), adminRequest(""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminReloadRuns(t *testing.T) {
	reloader := &stubReloader{count: 12}
	h := NewAdminHandler(reloader, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if body["events"] != float64(12) || reloader.calls != 1 {
		t.Fatalf("unexpected reload response %v", body)
	}
}

func TestAdminReloadFailure(t *testing.T) {
	h := NewAdminHandler(&stubReloader{err: errors.New("upstream down")}, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestAdminReloadNotConfigured(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
