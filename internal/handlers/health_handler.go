package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

const pingTimeout = 2 * time.Second

// Pinger checks that a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves the root and health endpoints
type HealthHandler struct {
	BaseHandler
	db Pinger
}

// NewHealthHandler creates a new health handler.
// db may be nil when no database is in use.
func NewHealthHandler(db Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:          db,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRootRoutes registers GET /
func (h *HealthHandler) RegisterRootRoutes(r chi.Router) {
	r.Get("/", h.Root)
}

// RegisterRoutes registers GET /health
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
}

// Root handles GET /
// @Summary API info
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Lesson Generator API",
		"version": Version,
	})
}

// Health handles GET /api/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Error("health check failed", zap.Error(err))
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
