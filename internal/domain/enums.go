package domain

import "fmt"

// SessionStatus статус сессии чтения
type SessionStatus string

const (
	SessionStatusActive     SessionStatus = "ACTIVE"
	SessionStatusPaused     SessionStatus = "PAUSED"
	SessionStatusCompleted  SessionStatus = "COMPLETED"
	SessionStatusTerminated SessionStatus = "TERMINATED"
)

// ParseSessionStatus разбирает статус из хранилища
func ParseSessionStatus(s string) (SessionStatus, error) {
	switch st := SessionStatus(s); st {
	case SessionStatusActive, SessionStatusPaused, SessionStatusCompleted, SessionStatusTerminated:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown session status %q", ErrInvalidArgument, s)
	}
}

// IsOpen возвращает true для статусов, из которых сессию еще можно завершить
func (s SessionStatus) IsOpen() bool {
	return s == SessionStatusActive || s == SessionStatusPaused
}

// PaymentKind тип тарификации
type PaymentKind string

const (
	PaymentKindPerPage PaymentKind = "PER_PAGE"
	PaymentKindPerHour PaymentKind = "PER_HOUR"
)

// ParsePaymentKind разбирает тип тарификации
func ParsePaymentKind(s string) (PaymentKind, error) {
	switch k := PaymentKind(s); k {
	case PaymentKindPerPage, PaymentKindPerHour:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown payment kind %q", ErrInvalidArgument, s)
	}
}

// PaymentStatus статус платежа
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

// ParsePaymentStatus разбирает статус платежа
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch st := PaymentStatus(s); st {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusRefunded:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown payment status %q", ErrInvalidArgument, s)
	}
}

// PaymentProvider платежный провайдер
type PaymentProvider string

const (
	PaymentProviderStripe   PaymentProvider = "STRIPE"
	PaymentProviderPayPal   PaymentProvider = "PAYPAL"
	PaymentProviderYooKassa PaymentProvider = "YOOKASSA"
)

// ParsePaymentProvider разбирает провайдера
func ParsePaymentProvider(s string) (PaymentProvider, error) {
	switch p := PaymentProvider(s); p {
	case PaymentProviderStripe, PaymentProviderPayPal, PaymentProviderYooKassa:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown payment provider %q", ErrInvalidArgument, s)
	}
}
