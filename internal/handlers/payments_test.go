package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/reading-billing/internal/domain"
	domainmocks "github.com/avc/reading-billing/internal/domain/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPaymentsRouter(t *testing.T) (*domainmocks.PaymentServiceMock, http.Handler) {
	svc := domainmocks.NewPaymentServiceMock(t)
	logger, _ := zap.NewDevelopment()
	h := NewPaymentsHandler(svc, logger)

	r := chi.NewRouter()
	r.Route("/api/payments", h.Routes)
	return svc, r
}

func TestPaymentsHandler_ListPayments(t *testing.T) {
	svc, router := newPaymentsRouter(t)

	t.Run("Payments found", func(t *testing.T) {
		svc.EXPECT().ListPayments(mock.Anything, int64(1)).Return([]domain.Payment{testPayment(1)}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthedRequest(http.MethodGet, "/api/payments", "", 1))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), `"amount":{"amount":"10.00","currency":"USD"}`)
	})

	t.Run("No payments", func(t *testing.T) {
		svc.EXPECT().ListPayments(mock.Anything, int64(1)).Return([]domain.Payment{}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthedRequest(http.MethodGet, "/api/payments", "", 1))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestPaymentsHandler_GetPayment(t *testing.T) {
	svc, router := newPaymentsRouter(t)
	payment := testPayment(1)

	t.Run("Success", func(t *testing.T) {
		svc.EXPECT().GetPayment(mock.Anything, int64(1), payment.ID).Return(payment, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthedRequest(http.MethodGet, "/api/payments/"+payment.ID.String(), "", 1))

		require.Equal(t, http.StatusOK, w.Code)
		var got domain.Payment
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, domain.PaymentStatusCompleted, got.Status)
		assert.True(t, got.Amount.Equal(payment.Amount))
	})

	t.Run("Not found", func(t *testing.T) {
		svc.EXPECT().GetPayment(mock.Anything, int64(1), payment.ID).Return(domain.Payment{}, domain.ErrPaymentNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthedRequest(http.MethodGet, "/api/payments/"+payment.ID.String(), "", 1))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPaymentsHandler_Refund(t *testing.T) {
	payment := testPayment(1)
	target := "/api/payments/" + payment.ID.String() + "/refund"

	t.Run("Partial refund", func(t *testing.T) {
		svc, router := newPaymentsRouter(t)
		refunded := payment
		amount := domain.MustMoney("4.00", "USD")
		refunded.RefundedAmount = &amount
		svc.EXPECT().Refund(mock.Anything, int64(1), payment.ID, mock.MatchedBy(func(m domain.Money) bool {
			return m.Equal(amount)
		})).Return(refunded, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthedRequest(http.MethodPost, target, `{"amount":"4","currency":"usd"}`, 1))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"refundedAmount":{"amount":"4.00","currency":"USD"}`)
	})

	t.Run("Refund exceeds remaining amount", func(t *testing.T) {
		svc, router := newPaymentsRouter(t)
		svc.EXPECT().Refund(mock.Anything, int64(1), payment.ID, mock.Anything).Return(domain.Payment{}, domain.ErrInvalidArgument).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthedRequest(http.MethodPost, target, `{"amount":"40.00","currency":"USD"}`, 1))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Payment not completed", func(t *testing.T) {
		svc, router := newPaymentsRouter(t)
		svc.EXPECT().Refund(mock.Anything, int64(1), payment.ID, mock.Anything).Return(domain.Payment{}, domain.ErrInvalidOperation).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthedRequest(http.MethodPost, target, `{"amount":"1.00","currency":"USD"}`, 1))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Refund committed, event delivery failed", func(t *testing.T) {
		svc, router := newPaymentsRouter(t)
		svc.EXPECT().Refund(mock.Anything, int64(1), payment.ID, mock.Anything).Return(payment, dispatchFailure()).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthedRequest(http.MethodPost, target, `{"amount":"1.00","currency":"USD"}`, 1))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, router := newPaymentsRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthedRequest(http.MethodPost, target, `{"amount":"ten","currency":"USD"}`, 1))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, newAuthedRequest(http.MethodPost, target, `{"amount":`, 1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentsHandler_AuthorEarnings(t *testing.T) {
	svc, router := newPaymentsRouter(t)
	payment := testPayment(1)

	svc.EXPECT().AuthorEarnings(mock.Anything, int64(1), payment.ID).Return(domain.AuthorEarning{
		PaymentID:      payment.ID,
		AuthorID:       7,
		BookID:         42,
		Gross:          domain.MustMoney("7.00", "USD"),
		Refunded:       domain.MustMoney("0.00", "USD"),
		Net:            domain.MustMoney("7.00", "USD"),
		CommissionRate: "0.3",
		UpdatedAt:      testNow,
	}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newAuthedRequest(http.MethodGet, "/api/payments/"+payment.ID.String()+"/earnings", "", 1))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"net":{"amount":"7.00","currency":"USD"}`)
}
