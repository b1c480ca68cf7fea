package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	AssetOrigin     string
	TeamsPath       string
	FallbackPath    string
	Timezone        string
	UpstreamTimeout time.Duration
	ReloadCron      string
	AdminToken      string
	CORSOrigins     []string
	Log             LogConfig
	MLB             MLBConfig
	Balldontlie     BalldontlieConfig
	Cache           CacheConfig
	Metrics         MetricsConfig
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// When CONFIG_FILE points at a YAML file its values sit underneath the environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if path := strings.TrimSpace(v.GetString(envConfigFile)); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	return load(source{v: v})
}

func load(src source) (Config, error) {
	port := src.str(envPort, defaultPort)

	cfg := Config{
		Port:            port,
		AssetOrigin:     strings.TrimRight(src.str(envAssetOrigin, "http://127.0.0.1:"+port), "/"),
		TeamsPath:       src.str(envTeamsPath, defaultTeamsPath),
		FallbackPath:    src.str(envFallbackPath, defaultFallbackPath),
		Timezone:        src.str(envTimezone, ""),
		UpstreamTimeout: src.duration(envUpstreamTimeout, defaultUpstreamTimeout),
		ReloadCron:      src.str(envReloadCron, ""),
		AdminToken:      src.str(envAdminToken, ""),
		CORSOrigins:     src.list(envCORSOrigins, defaultCORSOrigins),
		Log: LogConfig{
			Level:  src.str(envLogLevel, defaultLogLevel),
			Format: src.str(envLogFormat, defaultLogFormat),
		},
		MLB:         loadMLB(src),
		Balldontlie: loadBalldontlie(src),
		Cache:       loadCache(src),
		Metrics:     loadMetrics(src),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendFS, CacheBackendSQLite:
	case CacheBackendRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("%s=%s requires %s", envCacheBackend, c.Cache.Backend, envRedisURL)
		}
	default:
		return fmt.Errorf("unsupported %s %q", envCacheBackend, c.Cache.Backend)
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid %s %q: %w", envTimezone, c.Timezone, err)
		}
	}
	return nil
}

// Location resolves the configured timezone; empty means the host's local zone.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
