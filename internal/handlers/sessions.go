package handlers

import (
	"net/http"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionsHandler обрабатывает запросы к сессиям чтения
type SessionsHandler struct {
	reading domain.ReadingService
	logger  *zap.Logger
}

// NewSessionsHandler создает новый SessionsHandler
func NewSessionsHandler(reading domain.ReadingService, logger *zap.Logger) *SessionsHandler {
	return &SessionsHandler{
		reading: reading,
		logger:  logger,
	}
}

// Routes монтирует маршруты сессий
func (h *SessionsHandler) Routes(r chi.Router) {
	r.Post("/", h.StartSession)
	r.Get("/", h.ListSessions)
	r.Route("/{sessionID}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Post("/progress", h.UpdateProgress)
		r.Post("/pause", h.PauseSession)
		r.Post("/resume", h.ResumeSession)
		r.Post("/end", h.EndSession)
		r.Post("/complete", h.CompleteSession)
		r.Post("/charges", h.RecordCharge)
	})
}

type startSessionRequest struct {
	BookID int64 `json:"bookId"`
}

type progressRequest struct {
	CurrentPage    int `json:"currentPage"`
	TotalPagesRead int `json:"totalPagesRead"`
}

// chargeRequest пакет потребления. batchKey уникален в пределах сессии.
type chargeRequest struct {
	BatchKey string `json:"batchKey"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Kind     string `json:"kind"`
}

func (h *SessionsHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req startSessionRequest
	if err := decodeBody(r, &req); err != nil || req.BookID <= 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	session, err := h.reading.StartSession(r.Context(), userID, req.BookID)
	respond(w, h.logger, "start session", http.StatusCreated, session, err)
}

func (h *SessionsHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessions, err := h.reading.ListSessions(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, "list sessions", err)
		return
	}

	if len(sessions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, sessions)
}

func (h *SessionsHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionRequest(w, r)
	if !ok {
		return
	}

	session, err := h.reading.GetSession(r.Context(), userID, sessionID)
	respond(w, h.logger, "get session", http.StatusOK, session, err)
}

func (h *SessionsHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionRequest(w, r)
	if !ok {
		return
	}

	var req progressRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	session, err := h.reading.UpdateProgress(r.Context(), userID, sessionID, req.CurrentPage, req.TotalPagesRead)
	respond(w, h.logger, "update progress", http.StatusOK, session, err)
}

func (h *SessionsHandler) PauseSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionRequest(w, r)
	if !ok {
		return
	}

	session, err := h.reading.PauseSession(r.Context(), userID, sessionID)
	respond(w, h.logger, "pause session", http.StatusOK, session, err)
}

func (h *SessionsHandler) ResumeSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionRequest(w, r)
	if !ok {
		return
	}

	session, err := h.reading.ResumeSession(r.Context(), userID, sessionID)
	respond(w, h.logger, "resume session", http.StatusOK, session, err)
}

func (h *SessionsHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionRequest(w, r)
	if !ok {
		return
	}

	checkout, err := h.reading.EndSession(r.Context(), userID, sessionID)
	respond(w, h.logger, "end session", http.StatusOK, checkout, err)
}

func (h *SessionsHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionRequest(w, r)
	if !ok {
		return
	}

	checkout, err := h.reading.CompleteSession(r.Context(), userID, sessionID)
	respond(w, h.logger, "complete session", http.StatusOK, checkout, err)
}

func (h *SessionsHandler) RecordCharge(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionRequest(w, r)
	if !ok {
		return
	}

	var req chargeRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	amount, err := domain.ParseMoney(req.Amount, req.Currency)
	if err != nil {
		writeError(w, h.logger, "record charge", err)
		return
	}
	kind, err := domain.ParsePaymentKind(req.Kind)
	if err != nil {
		writeError(w, h.logger, "record charge", err)
		return
	}

	session, err := h.reading.RecordCharge(r.Context(), userID, sessionID, req.BatchKey, amount, kind)
	respond(w, h.logger, "record charge", http.StatusOK, session, err)
}

func (h *SessionsHandler) sessionRequest(w http.ResponseWriter, r *http.Request) (int64, uuid.UUID, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return 0, uuid.Nil, false
	}

	sessionID, ok := pathID(r, "sessionID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return 0, uuid.Nil, false
	}

	return userID, sessionID, true
}
