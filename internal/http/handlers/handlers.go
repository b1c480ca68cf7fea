package handlers

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"sports-hub-service/internal/calendar"
	domainevents "sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/domain/teams"
	"sports-hub-service/internal/filter"
	"sports-hub-service/internal/logging"
	"sports-hub-service/internal/offline"
	"sports-hub-service/internal/poller"
	"sports-hub-service/internal/view"
)

// msgLoadFailed is shown whenever the event list could not be produced.
const msgLoadFailed = "failed to load events data"

// EventService is the read side of the events application service.
type EventService interface {
	Ready() error
	EventByID(id string) (domainevents.Event, bool)
	Filter(c filter.Context) []domainevents.Event
	Sports() []string
	Teams() []teams.Team
	LoadedAt() time.Time
	Now() time.Time
}

// CacheInspector reports the offline cache state.
type CacheInspector interface {
	Status(ctx context.Context) (offline.Status, error)
}

// Handler wires HTTP routes to the events service.
type Handler struct {
	svc      EventService
	cache    CacheInspector
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. cache and statusFn may be nil.
func NewHandler(svc EventService, cache CacheInspector, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		cache:    cache,
		logger:   logger,
		statusFn: statusFn,
	}
}

// EventsResponse is the payload of the filtered listing.
type EventsResponse struct {
	Timeframe filter.Timeframe `json:"timeframe"`
	Sport     string           `json:"sport"`
	Query     string           `json:"query"`
	Count     int              `json:"count"`
	Events    []view.Card      `json:"events"`
	LoadedAt  time.Time        `json:"loadedAt"`
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn != nil {
		status := h.statusFn()
		if status.IsReady() {
			writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
			return
		}
		msg := status.LastError
		if msg == "" {
			msg = "not ready"
		}
		writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
		return
	}
	if err := h.svc.Ready(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Events returns the render-ready cards matching timeframe, sport and q.
func (h *Handler) Events(w nethttp.ResponseWriter, r *nethttp.Request) {
	selection, ok := h.selection(w, r, filter.Today)
	if !ok {
		return
	}
	if !h.loaded(w, r) {
		return
	}

	matched := h.svc.Filter(selection)
	cards := view.Cards(matched, h.svc.Now())
	logging.Debug(loggerFromContext(r, h.logger), "served events",
		"timeframe", selection.Timeframe,
		logging.FieldSport, selection.Sport,
		logging.FieldCount, len(cards),
	)
	writeJSON(w, nethttp.StatusOK, EventsResponse{
		Timeframe: selection.Timeframe,
		Sport:     selection.Sport,
		Query:     selection.Query,
		Count:     len(cards),
		Events:    cards,
		LoadedAt:  h.svc.LoadedAt(),
	}, h.logger)
}

// EventByID returns one canonical event.
func (h *Handler) EventByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid event id", h.logger)
		return
	}
	if !h.loaded(w, r) {
		return
	}
	ev, ok := h.svc.EventByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "event not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ev, h.logger)
}

// Sports lists the sport labels present in the loaded list.
func (h *Handler) Sports(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.loaded(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string][]string{"sports": h.svc.Sports()}, h.logger)
}

// Teams lists the followed-team registry.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.loaded(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string][]teams.Team{"teams": h.svc.Teams()}, h.logger)
}

// Calendar exports the selection as an iCalendar feed. The timeframe defaults to all.
func (h *Handler) Calendar(w nethttp.ResponseWriter, r *nethttp.Request) {
	selection, ok := h.selection(w, r, filter.All)
	if !ok {
		return
	}
	if !h.loaded(w, r) {
		return
	}

	matched := h.svc.Filter(selection)
	w.Header().Set("Content-Type", calendar.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", calendar.Filename(selection.Sport)))
	if err := calendar.Export(w, matched, h.svc.Now()); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "calendar export failed", err)
	}
}

// Cache reports the offline cache lifecycle and bucket contents.
func (h *Handler) Cache(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.cache == nil {
		writeError(w, r, nethttp.StatusNotFound, "offline cache disabled", h.logger)
		return
	}
	status, err := h.cache.Status(r.Context())
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "offline cache status failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "offline cache unavailable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, status, h.logger)
}

func (h *Handler) selection(w nethttp.ResponseWriter, r *nethttp.Request, fallback filter.Timeframe) (filter.Context, bool) {
	q := r.URL.Query()
	raw := q.Get("timeframe")
	tf := fallback
	if strings.TrimSpace(raw) != "" {
		parsed, err := filter.ParseTimeframe(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid timeframe (expected today, tomorrow, week or all)", h.logger)
			return filter.Context{}, false
		}
		tf = parsed
	}
	return filter.NewContext(tf, q.Get("sport"), q.Get("q")), true
}

// loaded writes the load-failure response when no list is available yet.
func (h *Handler) loaded(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if err := h.svc.Ready(); err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "events requested before load", "error", err)
		writeError(w, r, nethttp.StatusServiceUnavailable, msgLoadFailed, h.logger)
		return false
	}
	return true
}
