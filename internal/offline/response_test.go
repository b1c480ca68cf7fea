package offline

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestKeyDropsFragmentAndNormalizesMethod(t *testing.T) {
	u, _ := url.Parse("http://127.0.0.1:4000/index.html?x=1#top")
	if got := Key("get", u); got != "GET http://127.0.0.1:4000/index.html?x=1" {
		t.Fatalf("unexpected key %q", got)
	}
	if u.Fragment != "top" {
		t.Fatalf("expected caller url to stay untouched")
	}
}

func TestStoredResponseProducesIndependentBodies(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:4000/app.js", nil)
	stored := StoredResponse{StatusCode: http.StatusOK, Header: http.Header{"Content-Type": []string{"text/javascript"}}, Body: []byte("console.log(1)")}

	first := stored.Response(req)
	second := stored.Response(req)

	a, _ := io.ReadAll(first.Body)
	b, _ := io.ReadAll(second.Body)
	if string(a) != "console.log(1)" || string(b) != "console.log(1)" {
		t.Fatalf("expected both consumers to read the full body, got %q %q", a, b)
	}
	if first.Request != req || first.StatusCode != http.StatusOK || first.ContentLength != int64(len(a)) {
		t.Fatalf("unexpected response %+v", first)
	}
	first.Header.Set("X-Mutated", "1")
	if stored.Header.Get("X-Mutated") != "" {
		t.Fatalf("expected header copies")
	}
}

func TestCaptureCopiesBodyAndHeader(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://statsapi.mlb.com/api/v1/schedule", nil)
	resp := &http.Response{StatusCode: http.StatusOK, Header: http.Header{"Etag": []string{"abc"}}, Request: req}
	body := []byte(`{"dates":[]}`)

	stored := Capture(resp, body, time.Date(2024, 5, 1, 0, 0, 0, 0, time.FixedZone("x", 3600)))
	body[0] = 'X'
	resp.Header.Set("Etag", "changed")

	if string(stored.Body) != `{"dates":[]}` || stored.Header.Get("Etag") != "abc" {
		t.Fatalf("expected captured copies, got %+v", stored)
	}
	if stored.URL != "https://statsapi.mlb.com/api/v1/schedule" || stored.StoredAt.Location() != time.UTC {
		t.Fatalf("unexpected capture metadata %+v", stored)
	}
}

func TestBufferBodyLeavesReadableCopy(t *testing.T) {
	resp := &http.Response{Body: io.NopCloser(strings.NewReader("payload"))}
	body, err := bufferBody(resp)
	if err != nil || string(body) != "payload" {
		t.Fatalf("unexpected buffer result %q %v", body, err)
	}
	again, _ := io.ReadAll(resp.Body)
	if string(again) != "payload" || resp.ContentLength != 7 {
		t.Fatalf("expected response body to remain readable, got %q", again)
	}
}
