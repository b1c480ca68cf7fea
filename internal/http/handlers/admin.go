package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"sports-hub-service/internal/http/requestutil"
	"sports-hub-service/internal/logging"
)

// Reloader rebuilds the event list on demand.
type Reloader interface {
	Reload(ctx context.Context) (int, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	reloader Reloader
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(reloader Reloader, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reloader: reloader,
		token:    token,
		logger:   logger,
	}
}

type reloadResponse struct {
	Status string `json:"status"`
	Events int    `json:"events"`
}

// Reload rebuilds the event list immediately. A failed rebuild keeps the
// previous list and answers 502.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(loggerFromContext(r, h.logger), "admin unauthorized",
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.reloader == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reload not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	count, err := h.reloader.Reload(r.Context())
	if err != nil {
		logging.Error(logger, "admin reload failed", err)
		writeError(w, r, http.StatusBadGateway, msgLoadFailed, logger)
		return
	}

	logging.Info(logger, "admin reload complete", slog.Int(logging.FieldCount, count))
	writeJSON(w, http.StatusOK, reloadResponse{Status: "ok", Events: count}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := requestutil.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
