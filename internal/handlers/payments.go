package handlers

import (
	"net/http"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentsHandler обрабатывает запросы к платежам пользователя
type PaymentsHandler struct {
	payments domain.PaymentService
	logger   *zap.Logger
}

// NewPaymentsHandler создает новый PaymentsHandler
func NewPaymentsHandler(payments domain.PaymentService, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		payments: payments,
		logger:   logger,
	}
}

// Routes монтирует маршруты платежей
func (h *PaymentsHandler) Routes(r chi.Router) {
	r.Get("/", h.ListPayments)
	r.Route("/{paymentID}", func(r chi.Router) {
		r.Get("/", h.GetPayment)
		r.Post("/refund", h.Refund)
		r.Get("/earnings", h.AuthorEarnings)
	})
}

// refundRequest сумма частичного или полного возврата
type refundRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (h *PaymentsHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	payments, err := h.payments.ListPayments(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, "list payments", err)
		return
	}

	if len(payments) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, payments)
}

func (h *PaymentsHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	userID, paymentID, ok := h.paymentRequest(w, r)
	if !ok {
		return
	}

	payment, err := h.payments.GetPayment(r.Context(), userID, paymentID)
	respond(w, h.logger, "get payment", http.StatusOK, payment, err)
}

func (h *PaymentsHandler) Refund(w http.ResponseWriter, r *http.Request) {
	userID, paymentID, ok := h.paymentRequest(w, r)
	if !ok {
		return
	}

	var req refundRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	amount, err := domain.ParseMoney(req.Amount, req.Currency)
	if err != nil {
		writeError(w, h.logger, "refund", err)
		return
	}

	payment, err := h.payments.Refund(r.Context(), userID, paymentID, amount)
	respond(w, h.logger, "refund", http.StatusOK, payment, err)
}

func (h *PaymentsHandler) AuthorEarnings(w http.ResponseWriter, r *http.Request) {
	userID, paymentID, ok := h.paymentRequest(w, r)
	if !ok {
		return
	}

	earning, err := h.payments.AuthorEarnings(r.Context(), userID, paymentID)
	respond(w, h.logger, "author earnings", http.StatusOK, earning, err)
}

func (h *PaymentsHandler) paymentRequest(w http.ResponseWriter, r *http.Request) (int64, uuid.UUID, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return 0, uuid.Nil, false
	}

	paymentID, ok := pathID(r, "paymentID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return 0, uuid.Nil, false
	}

	return userID, paymentID, true
}
