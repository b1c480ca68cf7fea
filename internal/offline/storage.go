package offline

import (
	"context"
	"errors"
)

var (
	// ErrNoMatch is returned by Bucket.Match when the key is not cached.
	ErrNoMatch = errors.New("offline: no cached response")
	// ErrOffline is returned when the network failed and the cache had nothing usable.
	ErrOffline = errors.New("offline: network unavailable and nothing cached")
)

// Bucket is one named set of cached responses.
type Bucket interface {
	Match(ctx context.Context, key string) (StoredResponse, error)
	Put(ctx context.Context, key string, resp StoredResponse) error
	Keys(ctx context.Context) ([]string, error)
}

// Storage holds every bucket. Backends may also implement io.Closer.
type Storage interface {
	// Open returns the named bucket, creating it if needed.
	Open(ctx context.Context, name string) (Bucket, error)
	// Names lists existing buckets in sorted order.
	Names(ctx context.Context) ([]string, error)
	// Delete removes a bucket and reports whether it existed.
	Delete(ctx context.Context, name string) (bool, error)
}
