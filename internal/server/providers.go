package server

import (
	"log/slog"
	"net/http"

	"sports-hub-service/internal/config"
	"sports-hub-service/internal/metrics"
	"sports-hub-service/internal/providers"
	"sports-hub-service/internal/providers/balldontlie"
	"sports-hub-service/internal/providers/mlb"
)

const (
	sportMLB = "mlb"
	sportNBA = "nba"
)

// buildRegistry binds one league adapter per supported sport tag. Every upstream
// call goes through client, which is normally the offline-cache-wrapped client.
func buildRegistry(cfg config.Config, client *http.Client, logger *slog.Logger, recorder *metrics.Recorder) *providers.Registry {
	opts := providers.AdapterOptions{
		Logger:  logger,
		Metrics: recorder,
		Timeout: cfg.UpstreamTimeout,
	}
	registry := providers.NewRegistry()
	registry.Register(sportMLB, providers.NewLeagueAdapter(sportMLB, mlb.NewClient(mlb.Config{
		BaseURL:    cfg.MLB.BaseURL,
		HTTPClient: client,
	}), opts))
	registry.Register(sportNBA, providers.NewLeagueAdapter(sportNBA, balldontlie.NewClient(balldontlie.Config{
		BaseURL:    cfg.Balldontlie.BaseURL,
		APIKey:     cfg.Balldontlie.APIKey,
		HTTPClient: client,
	}), opts))
	return registry
}
