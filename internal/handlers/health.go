package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger проверяет доступность зависимости
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc адаптер функции к Pinger
type PingFunc func(ctx context.Context) error

// Ping реализует Pinger
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

const healthCheckTimeout = 2 * time.Second

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	db       Pinger
	optional map[string]Pinger
	logger   *zap.Logger
}

// NewHealthHandler создает новый HealthHandler. База данных обязательна,
// остальные зависимости добавляются через WithCheck.
func NewHealthHandler(db Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:       db,
		optional: make(map[string]Pinger),
		logger:   logger,
	}
}

// WithCheck добавляет необязательную зависимость, влияющую только на /health
func (h *HealthHandler) WithCheck(name string, p Pinger) *HealthHandler {
	h.optional[name] = p
	return h
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Health возвращает статус приложения и его зависимостей
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status:   "ok",
		Database: "ok",
	}

	if err := h.db.Ping(ctx); err != nil {
		response.Status = "degraded"
		response.Database = "unavailable"
		h.logger.Warn("health check: database unavailable", zap.Error(err))
	}

	if len(h.optional) > 0 {
		response.Dependencies = make(map[string]string, len(h.optional))
		for name, p := range h.optional {
			if err := p.Ping(ctx); err != nil {
				response.Dependencies[name] = "unavailable"
				h.logger.Warn("health check: dependency unavailable", zap.String("dependency", name), zap.Error(err))
				continue
			}
			response.Dependencies[name] = "ok"
		}
	}

	status := http.StatusOK
	if response.Database != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, h.logger, status, response)
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed: database unavailable", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
