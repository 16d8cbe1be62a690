package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionRepository определяет методы хранения сессий чтения.
// Update выполняет оптимистичную проверку версии и возвращает ErrConcurrentUpdate.
type SessionRepository interface {
	CreateSession(ctx context.Context, s ReadingSession) error
	GetSession(ctx context.Context, id uuid.UUID) (ReadingSession, error)
	UpdateSession(ctx context.Context, s ReadingSession) error
	FindOpenSession(ctx context.Context, userID, bookID int64) (ReadingSession, error)
	GetSessionsByUserID(ctx context.Context, userID int64) ([]ReadingSession, error)
	GetExpiredSessionIDs(ctx context.Context, startedBefore time.Time, limit int) ([]uuid.UUID, error)
}

// PaymentRepository определяет методы хранения платежей
type PaymentRepository interface {
	CreatePayment(ctx context.Context, p Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (Payment, error)
	GetPaymentByExternalID(ctx context.Context, externalTxnID string) (Payment, error)
	UpdatePayment(ctx context.Context, p Payment) error
	GetPaymentsByUserID(ctx context.Context, userID int64) ([]Payment, error)
}

// EarningsRepository определяет методы хранения доходов авторов
type EarningsRepository interface {
	UpsertEarning(ctx context.Context, e AuthorEarning) error
	GetEarning(ctx context.Context, paymentID uuid.UUID) (AuthorEarning, error)
}

// Repositories набор репозиториев, работающих в одной транзакции
type Repositories struct {
	Sessions SessionRepository
	Payments PaymentRepository
	Earnings EarningsRepository
}

// Transactor выполняет функцию в транзакции хранилища.
// Транзакция фиксируется, только если fn вернула nil.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// EventDispatcher доставляет события зарегистрированным обработчикам
type EventDispatcher interface {
	Dispatch(ctx context.Context, events Events) error
}

// CatalogClient определяет методы получения тарифов книги
type CatalogClient interface {
	GetBookPricing(ctx context.Context, bookID int64) (*BookPricing, error)
}

// IdempotencyStore защищает от повторной обработки одного и того же ключа
type IdempotencyStore interface {
	TryAcquire(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
}

// ReadingService определяет операции над сессиями чтения.
// Если состояние зафиксировано, но доставка событий не удалась, методы
// возвращают новое состояние вместе с ошибкой, удовлетворяющей errors.Is(err, ErrDispatchFailure).
type ReadingService interface {
	StartSession(ctx context.Context, userID, bookID int64) (ReadingSession, error)
	UpdateProgress(ctx context.Context, userID int64, sessionID uuid.UUID, currentPage, totalPagesRead int) (ReadingSession, error)
	PauseSession(ctx context.Context, userID int64, sessionID uuid.UUID) (ReadingSession, error)
	ResumeSession(ctx context.Context, userID int64, sessionID uuid.UUID) (ReadingSession, error)
	EndSession(ctx context.Context, userID int64, sessionID uuid.UUID) (Checkout, error)
	CompleteSession(ctx context.Context, userID int64, sessionID uuid.UUID) (Checkout, error)
	GetSession(ctx context.Context, userID int64, sessionID uuid.UUID) (ReadingSession, error)
	ListSessions(ctx context.Context, userID int64) ([]ReadingSession, error)
	RecordCharge(ctx context.Context, userID int64, sessionID uuid.UUID, batchKey string, amount Money, kind PaymentKind) (ReadingSession, error)
	ExpireSession(ctx context.Context, sessionID uuid.UUID, maxDuration time.Duration) (bool, error)
}

// PaymentService определяет операции над платежами
type PaymentService interface {
	CreatePayment(ctx context.Context, userID, bookID int64, amount Money, kind PaymentKind, provider PaymentProvider) (Payment, error)
	MarkProcessing(ctx context.Context, paymentID uuid.UUID, externalTxnID string) (Payment, error)
	MarkCompleted(ctx context.Context, paymentID uuid.UUID) (Payment, error)
	MarkFailed(ctx context.Context, paymentID uuid.UUID, reason string) (Payment, error)
	Refund(ctx context.Context, userID int64, paymentID uuid.UUID, amount Money) (Payment, error)
	GetPayment(ctx context.Context, userID int64, paymentID uuid.UUID) (Payment, error)
	ListPayments(ctx context.Context, userID int64) ([]Payment, error)
	AuthorEarnings(ctx context.Context, userID int64, paymentID uuid.UUID) (AuthorEarning, error)
	ApplyProviderStatus(ctx context.Context, update ProviderStatusUpdate) (Payment, error)
}
