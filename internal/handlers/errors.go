package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/avc/reading-billing/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// statusFor сопоставляет ошибку сервиса с HTTP статусом
func statusFor(err error) int {
	var rateLimit *service.RateLimitError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrPricingNotAvailable):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrActiveSessionExists),
		errors.Is(err, domain.ErrDuplicateCharge),
		errors.Is(err, domain.ErrInvalidOperation),
		errors.Is(err, domain.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.As(err, &rateLimit), errors.Is(err, service.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError пишет ответ об ошибке. Детали внутренних ошибок клиенту не отдаются
func writeError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	status := statusFor(err)

	var rateLimit *service.RateLimitError
	if errors.As(err, &rateLimit) && rateLimit.RetryAfter > 0 {
		seconds := int(math.Ceil(rateLimit.RetryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("request failed", zap.String("op", op), zap.Error(err))
		http.Error(w, http.StatusText(status), status)
	default:
		http.Error(w, err.Error(), status)
	}
}

// respond пишет результат операции. Если состояние зафиксировано, но события
// не доставлены, клиент получает 202 и актуальное состояние.
func respond(w http.ResponseWriter, logger *zap.Logger, op string, status int, body interface{}, err error) {
	if err != nil {
		if !errors.Is(err, domain.ErrDispatchFailure) {
			writeError(w, logger, op, err)
			return
		}
		logger.Warn("state committed but event dispatch failed", zap.String("op", op), zap.Error(err))
		status = http.StatusAccepted
	}

	writeJSON(w, logger, status, body)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// pathID разбирает UUID из параметра маршрута
func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody читает JSON тело запроса, отклоняя неизвестные поля
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
