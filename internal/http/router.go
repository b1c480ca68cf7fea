package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sports-hub-service/internal/http/handlers"
	"sports-hub-service/internal/http/middleware"
	"sports-hub-service/internal/metrics"
)

// RouterOptions wires the router. Admin and Assets are optional.
type RouterOptions struct {
	Handler     *handlers.Handler
	Admin       *handlers.AdminHandler
	Assets      nethttp.Handler
	CORSOrigins []string
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(opts RouterOptions) nethttp.Handler {
	h := opts.Handler
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(opts.Logger, opts.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(opts.CORSOrigins),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/events", h.Events)
		r.Get("/events.ics", h.Calendar)
		r.Get("/events/{id}", h.EventByID)
		r.Get("/sports", h.Sports)
		r.Get("/teams", h.Teams)
		r.Get("/cache", h.Cache)
	})

	if opts.Admin != nil {
		r.Post("/admin/reload", opts.Admin.Reload)
	}
	if opts.Assets != nil {
		r.Handle("/*", opts.Assets)
	}
	return r
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
