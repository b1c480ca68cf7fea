package server

import (
	"context"

	"sports-hub-service/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
	Reload(ctx context.Context) (int, error)
}

// CacheWorker is the offline cache lifecycle the server drives on startup.
type CacheWorker interface {
	Start(ctx context.Context) error
}
