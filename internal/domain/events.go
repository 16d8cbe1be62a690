package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind тег типа доменного события. Используется как ключ реестра
// обработчиков и как routing key при публикации.
type EventKind string

const (
	EventSessionStarted    EventKind = "SessionStarted"
	EventProgressUpdated   EventKind = "ProgressUpdated"
	EventSessionPaused     EventKind = "SessionPaused"
	EventSessionResumed    EventKind = "SessionResumed"
	EventSessionEnded      EventKind = "SessionEnded"
	EventSessionCompleted  EventKind = "SessionCompletedFlag"
	EventSessionTerminated EventKind = "SessionTerminated"
	EventSessionCharged    EventKind = "SessionCharged"

	EventPaymentInitiated  EventKind = "PaymentInitiated"
	EventPaymentProcessing EventKind = "PaymentProcessing"
	EventPaymentCompleted  EventKind = "PaymentCompleted"
	EventPaymentFailed     EventKind = "PaymentFailed"
	EventPaymentRefunded   EventKind = "PaymentRefunded"
)

// Event неизменяемый факт, возникший при изменении сущности.
// Поля полезной нагрузки являются контрактом с внешними потребителями:
// допускается только добавление новых необязательных полей.
type Event interface {
	Kind() EventKind
	OccurredOn() time.Time
	AggregateID() uuid.UUID
}

// Events упорядоченный список событий одной операции
type Events []Event

type sessionEvent struct {
	SessionID uuid.UUID `json:"sessionId"`
	UserID    int64     `json:"userId"`
	BookID    int64     `json:"bookId"`
	At        time.Time `json:"occurredOn"`
}

func (e sessionEvent) OccurredOn() time.Time  { return e.At }
func (e sessionEvent) AggregateID() uuid.UUID { return e.SessionID }

func newSessionEvent(s ReadingSession, at time.Time) sessionEvent {
	return sessionEvent{SessionID: s.ID, UserID: s.UserID, BookID: s.BookID, At: at}
}

// SessionStarted сессия начата
type SessionStarted struct {
	sessionEvent
	StartTime time.Time `json:"startTime"`
}

func (SessionStarted) Kind() EventKind { return EventSessionStarted }

// ProgressUpdated число прочитанных страниц выросло
type ProgressUpdated struct {
	sessionEvent
	CurrentPage       int `json:"currentPage"`
	TotalPagesRead    int `json:"totalPagesRead"`
	PreviousPagesRead int `json:"previousPagesRead"`
}

func (ProgressUpdated) Kind() EventKind { return EventProgressUpdated }

// SessionPaused сессия приостановлена
type SessionPaused struct{ sessionEvent }

func (SessionPaused) Kind() EventKind { return EventSessionPaused }

// SessionResumed сессия возобновлена
type SessionResumed struct{ sessionEvent }

func (SessionResumed) Kind() EventKind { return EventSessionResumed }

// SessionEnded сессия завершена пользователем
type SessionEnded struct {
	sessionEvent
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	PagesRead        int       `json:"pagesRead"`
	TimeSpentMinutes int       `json:"timeSpentMinutes"`
}

func (SessionEnded) Kind() EventKind { return EventSessionEnded }

// SessionCompletedFlag книга отмечена как дочитанная
type SessionCompletedFlag struct {
	sessionEvent
	PagesRead int `json:"pagesRead"`
}

func (SessionCompletedFlag) Kind() EventKind { return EventSessionCompleted }

// SessionTerminated сессия принудительно завершена
type SessionTerminated struct {
	sessionEvent
	Reason string `json:"reason"`
}

func (SessionTerminated) Kind() EventKind { return EventSessionTerminated }

// SessionCharged по сессии записано списание
type SessionCharged struct {
	sessionEvent
	Amount       Money       `json:"amount"`
	TotalCharged Money       `json:"totalCharged"`
	ChargeType   PaymentKind `json:"chargeType"`
}

func (SessionCharged) Kind() EventKind { return EventSessionCharged }

type paymentEvent struct {
	PaymentID uuid.UUID `json:"paymentId"`
	UserID    int64     `json:"userId"`
	BookID    int64     `json:"bookId"`
	Amount    Money     `json:"amount"`
	At        time.Time `json:"occurredOn"`
}

func (e paymentEvent) OccurredOn() time.Time  { return e.At }
func (e paymentEvent) AggregateID() uuid.UUID { return e.PaymentID }

func newPaymentEvent(p Payment, at time.Time) paymentEvent {
	return paymentEvent{PaymentID: p.ID, UserID: p.UserID, BookID: p.BookID, Amount: p.Amount, At: at}
}

// PaymentInitiated платеж создан
type PaymentInitiated struct {
	paymentEvent
	PaymentKind      PaymentKind     `json:"kind"`
	Provider         PaymentProvider `json:"provider"`
	ReadingSessionID *uuid.UUID      `json:"readingSessionId,omitempty"`
}

func (PaymentInitiated) Kind() EventKind { return EventPaymentInitiated }

// PaymentProcessing платеж передан провайдеру
type PaymentProcessing struct {
	paymentEvent
	ExternalTransactionID string `json:"externalTransactionId"`
}

func (PaymentProcessing) Kind() EventKind { return EventPaymentProcessing }

// PaymentCompleted платеж проведен
type PaymentCompleted struct {
	paymentEvent
	ExternalTransactionID string    `json:"externalTransactionId"`
	ProcessedAt           time.Time `json:"processedAt"`
}

func (PaymentCompleted) Kind() EventKind { return EventPaymentCompleted }

// PaymentFailed платеж отклонен
type PaymentFailed struct {
	paymentEvent
	Reason string `json:"reason"`
}

func (PaymentFailed) Kind() EventKind { return EventPaymentFailed }

// PaymentRefunded по платежу выполнен (частичный) возврат
type PaymentRefunded struct {
	paymentEvent
	RefundAmount  Money `json:"refundAmount"`
	TotalRefunded Money `json:"totalRefunded"`
	FullyRefunded bool  `json:"fullyRefunded"`
}

func (PaymentRefunded) Kind() EventKind { return EventPaymentRefunded }
