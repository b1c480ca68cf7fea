package config

import "time"

const (
	envConfigFile      = "CONFIG_FILE"
	envPort            = "PORT"
	envAssetOrigin     = "ASSET_ORIGIN"
	envTeamsPath       = "TEAMS_PATH"
	envFallbackPath    = "FALLBACK_PATH"
	envTimezone        = "TIMEZONE"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envReloadCron      = "RELOAD_CRON"
	envAdminToken      = "ADMIN_TOKEN"
	envCORSOrigins     = "CORS_ORIGINS"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMLBBaseURL      = "MLB_BASE_URL"
	envBdlBaseURL      = "BALDONTLIE_BASE_URL"
	envBdlAPIKey       = "BALDONTLIE_API_KEY"
	envCacheVersion    = "CACHE_VERSION"
	envCacheBackend    = "CACHE_BACKEND"
	envCacheDir        = "CACHE_DIR"
	envCacheSQLitePath = "CACHE_SQLITE_PATH"
	envRedisURL        = "REDIS_URL"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort         = "4000"
	defaultTeamsPath    = "/data/teams.json"
	defaultFallbackPath = "/data/sample-events.json"
	// Upstream calls are never retried, so a single generous budget bounds each adapter.
	defaultUpstreamTimeout = 15 * time.Second
	defaultCORSOrigins     = "*"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMLBBaseURL      = "https://statsapi.mlb.com/api/v1/schedule"
	defaultBdlBaseURL      = "https://www.balldontlie.io/api/v1"
	defaultCacheVersion    = "sports-hub-v1"
	defaultCacheBackend    = CacheBackendMemory
	defaultCacheDir        = "data/offline-cache"
	defaultCacheSQLitePath = "data/offline-cache.db"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "sports-hub-service"
)

// Supported offline cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendFS     = "fs"
	CacheBackendSQLite = "sqlite"
	CacheBackendRedis  = "redis"
)
