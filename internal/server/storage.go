package server

import (
	"context"
	"fmt"
	"io"

	"sports-hub-service/internal/config"
	"sports-hub-service/internal/offline"
	"sports-hub-service/internal/offline/fsstore"
	"sports-hub-service/internal/offline/redisstore"
	"sports-hub-service/internal/offline/sqlitestore"
)

// openStorage builds the configured offline cache backend. The closer may be nil.
func openStorage(ctx context.Context, cfg config.CacheConfig) (offline.Storage, io.Closer, error) {
	switch cfg.Backend {
	case config.CacheBackendFS:
		store, err := fsstore.New(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case config.CacheBackendSQLite:
		store, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case config.CacheBackendRedis:
		client, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.New(client, redisstore.DefaultPrefix), client, nil
	case config.CacheBackendMemory, "":
		return offline.NewMemoryStorage(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
