package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/google/uuid"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newAuthedRequest(method, target string, body string, userID int64) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(context.WithValue(req.Context(), UserIDKey, userID))
}

func testSession(userID int64) domain.ReadingSession {
	return domain.ReadingSession{
		ID:        uuid.MustParse("5b0d8c3c-9f1e-4a55-8c0a-1f9b2b7f5a11"),
		UserID:    userID,
		BookID:    42,
		StartTime: testNow,
		Status:    domain.SessionStatusActive,
	}
}

func testPayment(userID int64) domain.Payment {
	return domain.Payment{
		ID:          uuid.MustParse("0f3c1d2e-7a6b-4c59-9d1e-2b3a4c5d6e7f"),
		UserID:      userID,
		BookID:      42,
		Amount:      domain.MustMoney("10.00", "USD"),
		PaymentKind: domain.PaymentKindPerPage,
		Status:      domain.PaymentStatusCompleted,
		Provider:    domain.PaymentProviderStripe,
		CreatedAt:   testNow,
	}
}

func dispatchFailure() error {
	return &domain.DispatchError{Kind: domain.EventSessionEnded, Err: io.ErrUnexpectedEOF}
}
