package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment денежная транзакция пользователя за книгу.
// Как и ReadingSession, переходы возвращают новое состояние и события.
type Payment struct {
	ID                    uuid.UUID       `json:"id"`
	UserID                int64           `json:"userId"`
	BookID                int64           `json:"bookId"`
	Amount                Money           `json:"amount"`
	PaymentKind           PaymentKind     `json:"kind"`
	Status                PaymentStatus   `json:"status"`
	Provider              PaymentProvider `json:"provider"`
	ExternalTransactionID *string         `json:"externalTransactionId,omitempty"`
	ProcessedAt           *time.Time      `json:"processedAt,omitempty"`
	FailureReason         *string         `json:"failureReason,omitempty"`
	RefundedAmount        *Money          `json:"refundedAmount,omitempty"`
	RefundedAt            *time.Time      `json:"refundedAt,omitempty"`
	ReadingSessionID      *uuid.UUID      `json:"readingSessionId,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	Version               int             `json:"-"`
}

// NewPayment создает платеж в статусе PENDING
func NewPayment(clock Clock, userID, bookID int64, amount Money, kind PaymentKind, provider PaymentProvider) (Payment, Events, error) {
	if userID <= 0 || bookID <= 0 {
		return Payment{}, nil, fmt.Errorf("%w: user and book ids must be positive", ErrInvalidArgument)
	}
	if !amount.IsPositive() {
		return Payment{}, nil, fmt.Errorf("%w: payment amount must be positive", ErrInvalidArgument)
	}
	if _, err := ParsePaymentKind(string(kind)); err != nil {
		return Payment{}, nil, err
	}
	if _, err := ParsePaymentProvider(string(provider)); err != nil {
		return Payment{}, nil, err
	}

	now := clock.Now()
	p := Payment{
		ID:          uuid.New(),
		UserID:      userID,
		BookID:      bookID,
		Amount:      amount,
		PaymentKind: kind,
		Status:      PaymentStatusPending,
		Provider:    provider,
		CreatedAt:   now,
	}

	return p, Events{PaymentInitiated{
		paymentEvent: newPaymentEvent(p, now),
		PaymentKind:  kind,
		Provider:     provider,
	}}, nil
}

// MarkAsProcessing фиксирует передачу платежа провайдеру
func (p Payment) MarkAsProcessing(now time.Time, externalTxnID string) (Payment, Events, error) {
	externalTxnID = strings.TrimSpace(externalTxnID)
	if externalTxnID == "" {
		return p, nil, fmt.Errorf("%w: external transaction id is required", ErrInvalidArgument)
	}
	if p.Status != PaymentStatusPending {
		return p, nil, fmt.Errorf("%w: cannot process %s payment", ErrInvalidOperation, p.Status)
	}

	p.Status = PaymentStatusProcessing
	p.ExternalTransactionID = &externalTxnID

	return p, Events{PaymentProcessing{
		paymentEvent:          newPaymentEvent(p, now),
		ExternalTransactionID: externalTxnID,
	}}, nil
}

// MarkAsCompleted фиксирует успешное проведение платежа
func (p Payment) MarkAsCompleted(now time.Time) (Payment, Events, error) {
	if p.Status != PaymentStatusProcessing {
		return p, nil, fmt.Errorf("%w: cannot complete %s payment", ErrInvalidOperation, p.Status)
	}

	processedAt := now
	p.Status = PaymentStatusCompleted
	p.ProcessedAt = &processedAt

	var txnID string
	if p.ExternalTransactionID != nil {
		txnID = *p.ExternalTransactionID
	}

	return p, Events{PaymentCompleted{
		paymentEvent:          newPaymentEvent(p, now),
		ExternalTransactionID: txnID,
		ProcessedAt:           processedAt,
	}}, nil
}

// MarkAsFailed фиксирует отказ. Отклонить можно только PENDING или PROCESSING платеж.
func (p Payment) MarkAsFailed(now time.Time, reason string) (Payment, Events, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return p, nil, fmt.Errorf("%w: failure reason is required", ErrInvalidArgument)
	}
	if p.Status != PaymentStatusPending && p.Status != PaymentStatusProcessing {
		return p, nil, fmt.Errorf("%w: cannot fail %s payment", ErrInvalidOperation, p.Status)
	}

	p.Status = PaymentStatusFailed
	p.FailureReason = &reason

	return p, Events{PaymentFailed{paymentEvent: newPaymentEvent(p, now), Reason: reason}}, nil
}

// ProcessRefund выполняет частичный или полный возврат.
// Статус становится REFUNDED, когда возвращена вся сумма.
func (p Payment) ProcessRefund(now time.Time, refund Money) (Payment, Events, error) {
	if !refund.IsPositive() {
		return p, nil, fmt.Errorf("%w: refund amount must be positive", ErrInvalidArgument)
	}
	if refund.Currency() != p.Amount.Currency() {
		return p, nil, fmt.Errorf("%w: refund in %s for payment in %s",
			ErrCurrencyMismatch, refund.Currency(), p.Amount.Currency())
	}
	if p.Status != PaymentStatusCompleted {
		return p, nil, fmt.Errorf("%w: cannot refund %s payment", ErrInvalidOperation, p.Status)
	}

	total, err := p.refunded().Add(refund)
	if err != nil {
		return p, nil, err
	}
	if total.GreaterThan(p.Amount) {
		return p, nil, fmt.Errorf("%w: refund %s exceeds refundable %s",
			ErrInvalidArgument, refund, p.RefundableAmount())
	}

	refundedAt := now
	p.RefundedAmount = &total
	p.RefundedAt = &refundedAt

	fully := total.Equal(p.Amount)
	if fully {
		p.Status = PaymentStatusRefunded
	}

	return p, Events{PaymentRefunded{
		paymentEvent:  newPaymentEvent(p, now),
		RefundAmount:  refund,
		TotalRefunded: total,
		FullyRefunded: fully,
	}}, nil
}

// NewSessionPayment создает платеж за сессию чтения, уже связанный с ней.
// Событие PaymentInitiated несет идентификатор сессии.
func NewSessionPayment(clock Clock, session ReadingSession, amount Money, kind PaymentKind, provider PaymentProvider) (Payment, Events, error) {
	p, events, err := NewPayment(clock, session.UserID, session.BookID, amount, kind, provider)
	if err != nil {
		return Payment{}, nil, err
	}
	p, err = p.AssociateWithReadingSession(session.ID)
	if err != nil {
		return Payment{}, nil, err
	}

	for i, e := range events {
		if initiated, ok := e.(PaymentInitiated); ok {
			initiated.ReadingSessionID = p.ReadingSessionID
			events[i] = initiated
		}
	}
	return p, events, nil
}

// AssociateWithReadingSession связывает платеж с сессией, которая его породила
func (p Payment) AssociateWithReadingSession(sessionID uuid.UUID) (Payment, error) {
	if sessionID == uuid.Nil {
		return p, fmt.Errorf("%w: session id is required", ErrInvalidArgument)
	}
	p.ReadingSessionID = &sessionID
	return p, nil
}

// CalculateAuthorEarnings возвращает долю автора за вычетом комиссии платформы.
// Для непроведенного платежа доля нулевая.
func (p Payment) CalculateAuthorEarnings(commissionRate decimal.Decimal) (Money, error) {
	if commissionRate.IsNegative() || commissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return Money{}, fmt.Errorf("%w: commission rate %s must be within [0, 1]", ErrInvalidArgument, commissionRate)
	}
	if p.Status != PaymentStatusCompleted {
		return ZeroMoney(p.Amount.Currency())
	}

	net, err := p.Amount.Subtract(p.refunded())
	if err != nil {
		return Money{}, err
	}
	return net.Multiply(decimal.NewFromInt(1).Sub(commissionRate))
}

// IsRefundable возвращает true, если платеж проведен и возвращен не полностью
func (p Payment) IsRefundable() bool {
	return p.Status == PaymentStatusCompleted && p.Amount.GreaterThan(p.refunded())
}

// RefundableAmount остаток, доступный для возврата
func (p Payment) RefundableAmount() Money {
	if !p.IsRefundable() {
		return Money{amount: decimal.Zero, currency: p.Amount.Currency()}
	}
	rest, err := p.Amount.Subtract(p.refunded())
	if err != nil {
		return Money{amount: decimal.Zero, currency: p.Amount.Currency()}
	}
	return rest
}

// IsOwnedBy проверяет плательщика
func (p Payment) IsOwnedBy(userID int64) bool {
	return p.UserID == userID
}

func (p Payment) refunded() Money {
	if p.RefundedAmount != nil {
		return *p.RefundedAmount
	}
	return Money{amount: decimal.Zero, currency: p.Amount.Currency()}
}
