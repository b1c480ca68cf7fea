package config

import "strings"

// CacheConfig selects where the offline cache keeps its versioned buckets.
type CacheConfig struct {
	Version    string
	Backend    string
	Dir        string
	SQLitePath string
	RedisURL   string
}

func loadCache(src source) CacheConfig {
	return CacheConfig{
		Version:    src.str(envCacheVersion, defaultCacheVersion),
		Backend:    strings.ToLower(src.str(envCacheBackend, defaultCacheBackend)),
		Dir:        src.str(envCacheDir, defaultCacheDir),
		SQLitePath: src.str(envCacheSQLitePath, defaultCacheSQLitePath),
		RedisURL:   src.str(envRedisURL, ""),
	}
}
