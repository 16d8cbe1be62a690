package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultProviderFailureReason = "provider reported failure"

// PaymentService реализует domain.PaymentService
type PaymentService struct {
	uow            *UnitOfWork
	repos          domain.Repositories
	clock          domain.Clock
	commissionRate decimal.Decimal
	logger         *zap.Logger
}

// NewPaymentService создает новый PaymentService
func NewPaymentService(uow *UnitOfWork, repos domain.Repositories, clock domain.Clock, commissionRate decimal.Decimal, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		uow:            uow,
		repos:          repos,
		clock:          clock,
		commissionRate: commissionRate,
		logger:         logger,
	}
}

// CreatePayment создает платеж в статусе PENDING
func (s *PaymentService) CreatePayment(ctx context.Context, userID, bookID int64, amount domain.Money, kind domain.PaymentKind, provider domain.PaymentProvider) (domain.Payment, error) {
	var created domain.Payment

	err := s.uow.Run(ctx, func(ctx context.Context, repos domain.Repositories) (domain.Events, error) {
		payment, events, err := domain.NewPayment(s.clock, userID, bookID, amount, kind, provider)
		if err != nil {
			return nil, err
		}
		if err := repos.Payments.CreatePayment(ctx, payment); err != nil {
			return nil, err
		}

		created = payment
		return events, nil
	})

	return created, err
}

// MarkProcessing фиксирует передачу платежа провайдеру
func (s *PaymentService) MarkProcessing(ctx context.Context, paymentID uuid.UUID, externalTxnID string) (domain.Payment, error) {
	return s.transition(ctx, byID(paymentID), func(p domain.Payment, now time.Time) (domain.Payment, domain.Events, error) {
		return p.MarkAsProcessing(now, externalTxnID)
	})
}

// MarkCompleted фиксирует успешное проведение платежа
func (s *PaymentService) MarkCompleted(ctx context.Context, paymentID uuid.UUID) (domain.Payment, error) {
	return s.transition(ctx, byID(paymentID), domain.Payment.MarkAsCompleted)
}

// MarkFailed фиксирует отказ провайдера
func (s *PaymentService) MarkFailed(ctx context.Context, paymentID uuid.UUID, reason string) (domain.Payment, error) {
	return s.transition(ctx, byID(paymentID), func(p domain.Payment, now time.Time) (domain.Payment, domain.Events, error) {
		return p.MarkAsFailed(now, reason)
	})
}

// Refund выполняет возврат по платежу пользователя
func (s *PaymentService) Refund(ctx context.Context, userID int64, paymentID uuid.UUID, amount domain.Money) (domain.Payment, error) {
	return s.transition(ctx, ownedByID(userID, paymentID), func(p domain.Payment, now time.Time) (domain.Payment, domain.Events, error) {
		return p.ProcessRefund(now, amount)
	})
}

// GetPayment возвращает платеж пользователя
func (s *PaymentService) GetPayment(ctx context.Context, userID int64, paymentID uuid.UUID) (domain.Payment, error) {
	return ownedByID(userID, paymentID)(ctx, s.repos.Payments)
}

// ListPayments возвращает все платежи пользователя
func (s *PaymentService) ListPayments(ctx context.Context, userID int64) ([]domain.Payment, error) {
	return s.repos.Payments.GetPaymentsByUserID(ctx, userID)
}

// AuthorEarnings возвращает доход автора по платежу. Если доход еще не
// записан обработчиком событий, он рассчитывается по текущему состоянию платежа.
func (s *PaymentService) AuthorEarnings(ctx context.Context, userID int64, paymentID uuid.UUID) (domain.AuthorEarning, error) {
	payment, err := s.GetPayment(ctx, userID, paymentID)
	if err != nil {
		return domain.AuthorEarning{}, err
	}

	earning, err := s.repos.Earnings.GetEarning(ctx, paymentID)
	if err == nil {
		return earning, nil
	}
	if !errors.Is(err, domain.ErrPaymentNotFound) {
		return domain.AuthorEarning{}, err
	}

	return ComputeEarning(payment, 0, s.commissionRate, s.clock.Now())
}

// ApplyProviderStatus применяет статус, полученный от шлюза провайдера.
// Повторная доставка уже примененного статуса ничего не меняет.
func (s *PaymentService) ApplyProviderStatus(ctx context.Context, update domain.ProviderStatusUpdate) (domain.Payment, error) {
	load := byExternalID(update.ExternalTransactionID)
	if update.PaymentID != uuid.Nil {
		load = byID(update.PaymentID)
	}

	return s.transition(ctx, load, func(p domain.Payment, now time.Time) (domain.Payment, domain.Events, error) {
		switch update.Status {
		case domain.ProviderStatusProcessing:
			if p.Status != domain.PaymentStatusPending {
				return p, nil, nil
			}
			return p.MarkAsProcessing(now, update.ExternalTransactionID)

		case domain.ProviderStatusSucceeded:
			var events domain.Events
			switch p.Status {
			case domain.PaymentStatusCompleted, domain.PaymentStatusRefunded:
				return p, nil, nil
			case domain.PaymentStatusPending:
				processing, processingEvents, err := p.MarkAsProcessing(now, update.ExternalTransactionID)
				if err != nil {
					return p, nil, err
				}
				p = processing
				events = processingEvents
			}
			completed, completedEvents, err := p.MarkAsCompleted(now)
			if err != nil {
				return p, nil, err
			}
			return completed, append(events, completedEvents...), nil

		case domain.ProviderStatusFailed:
			if p.Status == domain.PaymentStatusFailed {
				return p, nil, nil
			}
			reason := strings.TrimSpace(update.Reason)
			if reason == "" {
				reason = defaultProviderFailureReason
			}
			return p.MarkAsFailed(now, reason)

		default:
			return p, nil, fmt.Errorf("%w: unknown provider status %q", domain.ErrInvalidArgument, update.Status)
		}
	})
}

type paymentLoader func(ctx context.Context, repo domain.PaymentRepository) (domain.Payment, error)

type paymentTransition func(p domain.Payment, now time.Time) (domain.Payment, domain.Events, error)

func byID(paymentID uuid.UUID) paymentLoader {
	return func(ctx context.Context, repo domain.PaymentRepository) (domain.Payment, error) {
		return repo.GetPayment(ctx, paymentID)
	}
}

func ownedByID(userID int64, paymentID uuid.UUID) paymentLoader {
	return func(ctx context.Context, repo domain.PaymentRepository) (domain.Payment, error) {
		payment, err := repo.GetPayment(ctx, paymentID)
		if err != nil {
			return domain.Payment{}, err
		}
		if !payment.IsOwnedBy(userID) {
			return domain.Payment{}, domain.ErrPaymentNotFound
		}
		return payment, nil
	}
}

func byExternalID(externalTxnID string) paymentLoader {
	return func(ctx context.Context, repo domain.PaymentRepository) (domain.Payment, error) {
		if strings.TrimSpace(externalTxnID) == "" {
			return domain.Payment{}, fmt.Errorf("%w: payment id or external transaction id is required", domain.ErrInvalidArgument)
		}
		return repo.GetPaymentByExternalID(ctx, externalTxnID)
	}
}

// transition загружает платеж, применяет переход и сохраняет результат.
// Переход без событий считается пустым и не сохраняется.
func (s *PaymentService) transition(ctx context.Context, load paymentLoader, apply paymentTransition) (domain.Payment, error) {
	var result domain.Payment

	err := s.uow.Run(ctx, func(ctx context.Context, repos domain.Repositories) (domain.Events, error) {
		payment, err := load(ctx, repos.Payments)
		if err != nil {
			return nil, err
		}

		next, events, err := apply(payment, s.clock.Now())
		if err != nil {
			return nil, err
		}
		if len(events) == 0 {
			result = next
			return nil, nil
		}

		if err := repos.Payments.UpdatePayment(ctx, next); err != nil {
			return nil, err
		}
		next.Version++

		result = next
		return events, nil
	})

	return result, err
}
