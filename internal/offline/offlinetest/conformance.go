// Package offlinetest holds a behavioural suite every offline.Storage backend must pass.
package offlinetest

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"sports-hub-service/internal/offline"
)

// Factory returns a fresh, empty storage for one subtest.
type Factory func(t *testing.T) offline.Storage

// RunStorageSuite exercises bucket lifecycle and entry isolation.
func RunStorageSuite(t *testing.T, newStorage Factory) {
	t.Helper()

	t.Run("open creates and lists buckets", func(t *testing.T) {
		ctx := context.Background()
		s := newStorage(t)
		if _, err := s.Open(ctx, "sports-hub-v2"); err != nil {
			t.Fatalf("open: %v", err)
		}
		if _, err := s.Open(ctx, "sports-hub-v1"); err != nil {
			t.Fatalf("open: %v", err)
		}
		names, err := s.Names(ctx)
		if err != nil {
			t.Fatalf("names: %v", err)
		}
		if len(names) != 2 || names[0] != "sports-hub-v1" || names[1] != "sports-hub-v2" {
			t.Fatalf("expected sorted bucket names, got %v", names)
		}
	})

	t.Run("put then match returns an independent copy", func(t *testing.T) {
		ctx := context.Background()
		s := newStorage(t)
		b, err := s.Open(ctx, "v1")
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		key := "GET http://127.0.0.1:4000/index.html"
		if _, err := b.Match(ctx, key); !errors.Is(err, offline.ErrNoMatch) {
			t.Fatalf("expected ErrNoMatch before put, got %v", err)
		}

		stored := offline.StoredResponse{
			URL:        "http://127.0.0.1:4000/index.html",
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"text/html"}},
			Body:       []byte("<html></html>"),
			StoredAt:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		}
		if err := b.Put(ctx, key, stored); err != nil {
			t.Fatalf("put: %v", err)
		}
		stored.Body[0] = 'X'

		got, err := b.Match(ctx, key)
		if err != nil {
			t.Fatalf("match: %v", err)
		}
		if string(got.Body) != "<html></html>" || got.StatusCode != http.StatusOK {
			t.Fatalf("unexpected stored response %+v", got)
		}
		if got.Header.Get("Content-Type") != "text/html" || got.URL != stored.URL {
			t.Fatalf("expected header and url to round trip, got %+v", got)
		}
		if !got.StoredAt.Equal(stored.StoredAt) {
			t.Fatalf("expected storedAt to round trip, got %v", got.StoredAt)
		}

		keys, err := b.Keys(ctx)
		if err != nil || len(keys) != 1 || keys[0] != key {
			t.Fatalf("expected one key, got %v %v", keys, err)
		}
	})

	t.Run("put overwrites", func(t *testing.T) {
		ctx := context.Background()
		s := newStorage(t)
		b, _ := s.Open(ctx, "v1")
		_ = b.Put(ctx, "k", offline.StoredResponse{StatusCode: 200, Body: []byte("one")})
		_ = b.Put(ctx, "k", offline.StoredResponse{StatusCode: 200, Body: []byte("two")})

		got, err := b.Match(ctx, "k")
		if err != nil || string(got.Body) != "two" {
			t.Fatalf("expected overwrite, got %q %v", got.Body, err)
		}
	})

	t.Run("buckets are isolated and delete removes entries", func(t *testing.T) {
		ctx := context.Background()
		s := newStorage(t)
		v1, _ := s.Open(ctx, "v1")
		v2, _ := s.Open(ctx, "v2")
		_ = v1.Put(ctx, "k", offline.StoredResponse{StatusCode: 200, Body: []byte("old")})

		if _, err := v2.Match(ctx, "k"); !errors.Is(err, offline.ErrNoMatch) {
			t.Fatalf("expected v2 not to see v1 entries, got %v", err)
		}

		existed, err := s.Delete(ctx, "v1")
		if err != nil || !existed {
			t.Fatalf("expected delete to report existing bucket, got %v %v", existed, err)
		}
		existed, err = s.Delete(ctx, "v1")
		if err != nil || existed {
			t.Fatalf("expected second delete to report missing bucket, got %v %v", existed, err)
		}

		reopened, _ := s.Open(ctx, "v1")
		if _, err := reopened.Match(ctx, "k"); !errors.Is(err, offline.ErrNoMatch) {
			t.Fatalf("expected deleted bucket to come back empty, got %v", err)
		}
	})
}
