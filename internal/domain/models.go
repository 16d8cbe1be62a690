package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookPricing тарифы книги из каталога
type BookPricing struct {
	BookID       int64       `json:"bookId"`
	AuthorID     int64       `json:"authorId"`
	ChargeKind   PaymentKind `json:"chargeKind"`
	PricePerPage Money       `json:"pricePerPage"`
	PricePerHour Money       `json:"pricePerHour"`
	TotalPages   int         `json:"totalPages"`
}

// Checkout результат завершения сессии: сессия и созданный по ней платеж.
// Payment равен nil, если начислять нечего.
type Checkout struct {
	Session ReadingSession `json:"session"`
	Payment *Payment       `json:"payment,omitempty"`
}

// AuthorEarning доход автора по одному платежу
type AuthorEarning struct {
	PaymentID      uuid.UUID `json:"paymentId"`
	AuthorID       int64     `json:"authorId"`
	BookID         int64     `json:"bookId"`
	Gross          Money     `json:"gross"`
	Refunded       Money     `json:"refunded"`
	Net            Money     `json:"net"`
	CommissionRate string    `json:"commissionRate"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProviderStatus нормализованный статус платежа от шлюза провайдера
type ProviderStatus string

const (
	ProviderStatusProcessing ProviderStatus = "PROCESSING"
	ProviderStatusSucceeded  ProviderStatus = "SUCCEEDED"
	ProviderStatusFailed     ProviderStatus = "FAILED"
)

// ProviderStatusUpdate сообщение шлюза об изменении статуса платежа
type ProviderStatusUpdate struct {
	PaymentID             uuid.UUID      `json:"paymentId"`
	ExternalTransactionID string         `json:"externalTransactionId"`
	Status                ProviderStatus `json:"status"`
	Reason                string         `json:"reason,omitempty"`
}
