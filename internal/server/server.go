package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"sports-hub-service/internal/aggregator"
	appevents "sports-hub-service/internal/app/events"
	"sports-hub-service/internal/config"
	"sports-hub-service/internal/fixtures"
	httpserver "sports-hub-service/internal/http"
	"sports-hub-service/internal/http/handlers"
	"sports-hub-service/internal/logging"
	"sports-hub-service/internal/metrics"
	"sports-hub-service/internal/offline"
	"sports-hub-service/internal/poller"
	"sports-hub-service/internal/static"
	"sports-hub-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	storage       io.Closer
	worker        CacheWorker
	service       *appevents.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New wires storage, the offline cache worker, the league adapters, the events
// service and the HTTP surface from cfg.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	storage, closer, err := openStorage(context.Background(), cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("open offline cache: %w", err)
	}

	worker, err := offline.NewWorker(offline.WorkerConfig{
		Version:    cfg.Cache.Version,
		Origin:     cfg.AssetOrigin,
		Storage:    storage,
		HTTPClient: &http.Client{Timeout: cfg.UpstreamTimeout},
		Logger:     logger,
		Metrics:    recorder,
	})
	if err != nil {
		closeQuietly(closer)
		return nil, err
	}

	cached := worker.Client(nil)
	cached.Timeout = cfg.UpstreamTimeout

	svc := buildService(cfg, cached, logger, recorder)
	plr, err := poller.New(poller.Config{
		Loader:   svc,
		Schedule: cfg.ReloadCron,
		Logger:   logger,
		Metrics:  recorder,
	})
	if err != nil {
		closeQuietly(closer)
		return nil, err
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		storage:       closer,
		worker:        worker,
		service:       svc,
		httpServer:    buildHTTPServer(cfg, svc, worker, plr, logger, recorder),
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller, worker CacheWorker) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		worker:     worker,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildService(cfg config.Config, client *http.Client, logger *slog.Logger, recorder *metrics.Recorder) *appevents.Service {
	loc := cfg.Location()
	loader := fixtures.NewLoader(fixtures.Config{
		Origin:       cfg.AssetOrigin,
		TeamsPath:    cfg.TeamsPath,
		FallbackPath: cfg.FallbackPath,
		HTTPClient:   client,
		Logger:       logger,
	})
	agg := aggregator.New(aggregator.Config{
		Registry: buildRegistry(cfg, client, logger, recorder),
		Fallback: loader,
		Location: loc,
		Logger:   logger,
		Metrics:  recorder,
	})
	return appevents.NewService(appevents.Config{
		Store:    store.NewEventStore(),
		Roster:   loader,
		Builder:  agg,
		Location: loc,
		Logger:   logger,
	})
}

func buildHTTPServer(cfg config.Config, svc *appevents.Service, worker *offline.Worker, plr Poller, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(svc, worker, logger, plr.Status)

	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(plr, cfg.AdminToken, logger)
	}

	router := httpserver.NewRouter(httpserver.RouterOptions{
		Handler:     handler,
		Admin:       admin,
		Assets:      static.Handler(),
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
		Metrics:     recorder,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run serves HTTP, installs the offline cache against the now-listening asset
// origin, starts the reload poller, then waits for ctx to end and shuts down.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) error {
	s.startMetrics()
	if err := s.startServer(stop); err != nil {
		s.gracefulShutdown()
		return err
	}

	if s.worker != nil {
		if err := s.worker.Start(ctx); err != nil {
			logging.Warn(s.logger, "offline cache install failed, serving without it", "error", err)
		}
	}
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
	return nil
}

func (s *Server) startServer(stop context.CancelFunc) error {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	return launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	if err := launchServer("metrics", s.metricsServer, s.logger, nil); err != nil {
		logging.Warn(s.logger, "metrics server disabled", "error", err)
		s.metricsServer = nil
	}
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			logging.Warn(s.logger, "offline cache close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// launchServer binds srv's address synchronously so bind errors surface to the
// caller, then serves in the background.
func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) error {
	l, err := listen("tcp", srv.Addr())
	if err != nil {
		return fmt.Errorf("%s server listen: %w", name, err)
	}
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", l.Addr().String()))
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
	return nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
