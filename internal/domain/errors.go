package domain

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Ошибки бизнес-правил
var (
	// ErrInvalidArgument некорректный входной аргумент
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidOperation корректный аргумент, но неподходящее состояние сущности
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrCurrencyMismatch разновалютная операция; является частным случаем ErrInvalidArgument
	ErrCurrencyMismatch = fmt.Errorf("%w: currency mismatch", ErrInvalidArgument)
)

// Ошибки сессий чтения
var (
	ErrSessionNotFound     = errors.New("reading session not found")
	ErrActiveSessionExists = errors.New("active reading session already exists for this book")
	ErrDuplicateCharge     = errors.New("charge already recorded for this batch")
	ErrPricingNotAvailable = errors.New("book pricing not available")
)

// Ошибки платежей
var (
	ErrPaymentNotFound = errors.New("payment not found")
)

// Ошибки хранилища и доставки событий
var (
	ErrConcurrentUpdate = errors.New("entity was modified concurrently")
	ErrDispatchFailure  = errors.New("domain event dispatch failed")
)

// DispatchError возвращается, когда состояние уже зафиксировано,
// но один или несколько обработчиков событий завершились ошибкой
type DispatchError struct {
	Kind EventKind
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s: %d handler(s) failed: %v", e.Kind, len(multierr.Errors(e.Err)), e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Is позволяет проверять errors.Is(err, ErrDispatchFailure)
func (e *DispatchError) Is(target error) bool {
	return target == ErrDispatchFailure
}
