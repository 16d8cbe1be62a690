package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	chargeIdempotencyScope = "session-charge"
	expiredSessionReason   = "timeout"
)

// ReadingService реализует domain.ReadingService
type ReadingService struct {
	uow         *UnitOfWork
	repos       domain.Repositories
	catalog     domain.CatalogClient
	idempotency domain.IdempotencyStore
	clock       domain.Clock
	provider    domain.PaymentProvider
	logger      *zap.Logger
}

// NewReadingService создает новый ReadingService.
// idempotency может быть nil, тогда повторная запись пакета не отслеживается.
func NewReadingService(
	uow *UnitOfWork,
	repos domain.Repositories,
	catalog domain.CatalogClient,
	idempotency domain.IdempotencyStore,
	clock domain.Clock,
	provider domain.PaymentProvider,
	logger *zap.Logger,
) *ReadingService {
	return &ReadingService{
		uow:         uow,
		repos:       repos,
		catalog:     catalog,
		idempotency: idempotency,
		clock:       clock,
		provider:    provider,
		logger:      logger,
	}
}

// StartSession начинает сессию, если у пользователя нет открытой сессии по этой книге
func (s *ReadingService) StartSession(ctx context.Context, userID, bookID int64) (domain.ReadingSession, error) {
	var started domain.ReadingSession

	err := s.uow.Run(ctx, func(ctx context.Context, repos domain.Repositories) (domain.Events, error) {
		_, err := repos.Sessions.FindOpenSession(ctx, userID, bookID)
		switch {
		case err == nil:
			return nil, domain.ErrActiveSessionExists
		case !errors.Is(err, domain.ErrSessionNotFound):
			return nil, err
		}

		session, events, err := domain.StartReadingSession(s.clock, userID, bookID)
		if err != nil {
			return nil, err
		}
		if err := repos.Sessions.CreateSession(ctx, session); err != nil {
			return nil, err
		}

		started = session
		return events, nil
	})

	return started, err
}

// UpdateProgress фиксирует прогресс чтения. Страницы сверяются с длиной книги
// из каталога, иначе сессию потом нельзя будет протарифицировать.
func (s *ReadingService) UpdateProgress(ctx context.Context, userID int64, sessionID uuid.UUID, currentPage, totalPagesRead int) (domain.ReadingSession, error) {
	current, err := loadOwnedSession(ctx, s.repos.Sessions, userID, sessionID)
	if err != nil {
		return domain.ReadingSession{}, err
	}

	pricing, err := s.catalog.GetBookPricing(ctx, current.BookID)
	if err != nil {
		return domain.ReadingSession{}, err
	}
	if pricing.TotalPages > 0 && (currentPage > pricing.TotalPages || totalPagesRead > pricing.TotalPages) {
		return domain.ReadingSession{}, fmt.Errorf("%w: progress page %d, pages read %d exceed book length %d",
			domain.ErrInvalidArgument, currentPage, totalPagesRead, pricing.TotalPages)
	}

	return s.transition(ctx, userID, sessionID, func(session domain.ReadingSession, now time.Time) (domain.ReadingSession, domain.Events, error) {
		return session.UpdateProgress(now, currentPage, totalPagesRead)
	})
}

// PauseSession приостанавливает сессию
func (s *ReadingService) PauseSession(ctx context.Context, userID int64, sessionID uuid.UUID) (domain.ReadingSession, error) {
	return s.transition(ctx, userID, sessionID, domain.ReadingSession.Pause)
}

// ResumeSession возобновляет приостановленную сессию
func (s *ReadingService) ResumeSession(ctx context.Context, userID int64, sessionID uuid.UUID) (domain.ReadingSession, error) {
	return s.transition(ctx, userID, sessionID, domain.ReadingSession.Resume)
}

// EndSession завершает сессию, списывает стоимость по тарифу книги
// и создает платеж, связанный с сессией
func (s *ReadingService) EndSession(ctx context.Context, userID int64, sessionID uuid.UUID) (domain.Checkout, error) {
	return s.checkout(ctx, userID, sessionID, domain.ReadingSession.End)
}

// CompleteSession отмечает книгу дочитанной. Открытая сессия при этом
// завершается и тарифицируется так же, как в EndSession.
func (s *ReadingService) CompleteSession(ctx context.Context, userID int64, sessionID uuid.UUID) (domain.Checkout, error) {
	return s.checkout(ctx, userID, sessionID, domain.ReadingSession.MarkCompleted)
}

// GetSession возвращает сессию пользователя
func (s *ReadingService) GetSession(ctx context.Context, userID int64, sessionID uuid.UUID) (domain.ReadingSession, error) {
	return loadOwnedSession(ctx, s.repos.Sessions, userID, sessionID)
}

// ListSessions возвращает все сессии пользователя
func (s *ReadingService) ListSessions(ctx context.Context, userID int64) ([]domain.ReadingSession, error) {
	return s.repos.Sessions.GetSessionsByUserID(ctx, userID)
}

// RecordCharge записывает пакет потребления в сессию пользователя.
// Каждый batchKey учитывается один раз, повтор возвращает ErrDuplicateCharge.
func (s *ReadingService) RecordCharge(ctx context.Context, userID int64, sessionID uuid.UUID, batchKey string, amount domain.Money, kind domain.PaymentKind) (domain.ReadingSession, error) {
	batchKey = strings.TrimSpace(batchKey)
	if batchKey == "" {
		return domain.ReadingSession{}, fmt.Errorf("%w: charge batch key is required", domain.ErrInvalidArgument)
	}
	if _, err := loadOwnedSession(ctx, s.repos.Sessions, userID, sessionID); err != nil {
		return domain.ReadingSession{}, err
	}

	key := sessionID.String() + ":" + batchKey
	if s.idempotency != nil {
		acquired, err := s.idempotency.TryAcquire(ctx, chargeIdempotencyScope, key)
		if err != nil {
			return domain.ReadingSession{}, fmt.Errorf("reading service: failed to check charge batch: %w", err)
		}
		if !acquired {
			return domain.ReadingSession{}, domain.ErrDuplicateCharge
		}
	}

	var charged domain.ReadingSession
	err := s.uow.Run(ctx, func(ctx context.Context, repos domain.Repositories) (domain.Events, error) {
		session, err := loadOwnedSession(ctx, repos.Sessions, userID, sessionID)
		if err != nil {
			return nil, err
		}

		next, events, err := session.RecordCharge(s.clock.Now(), amount, kind)
		if err != nil {
			return nil, err
		}
		if err := saveSession(ctx, repos.Sessions, &next); err != nil {
			return nil, err
		}

		charged = next
		return events, nil
	})

	// Пакет не записан: ключ освобождается, чтобы вызывающий мог повторить
	if err != nil && !errors.Is(err, domain.ErrDispatchFailure) && s.idempotency != nil {
		if releaseErr := s.idempotency.Release(ctx, chargeIdempotencyScope, key); releaseErr != nil {
			s.logger.Error("failed to release charge batch key",
				zap.String("key", key),
				zap.Error(releaseErr),
			)
		}
	}

	return charged, err
}

// ExpireSession принудительно завершает сессию, превысившую maxDuration,
// и тарифицирует ее так же, как EndSession.
// Возвращает false, если сессия уже закрыта или лимит не превышен.
// Пока каталог недоступен, сессия остается открытой до следующего прохода.
func (s *ReadingService) ExpireSession(ctx context.Context, sessionID uuid.UUID, maxDuration time.Duration) (bool, error) {
	current, err := s.repos.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if !current.HasExceededTimeLimit(s.clock.Now(), maxDuration) {
		return false, nil
	}

	pricing, err := s.catalog.GetBookPricing(ctx, current.BookID)
	if err != nil && !errors.Is(err, domain.ErrPricingNotAvailable) {
		return false, err
	}

	var terminated bool
	err = s.uow.Run(ctx, func(ctx context.Context, repos domain.Repositories) (domain.Events, error) {
		terminated = false

		session, err := repos.Sessions.GetSession(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		now := s.clock.Now()
		if !session.HasExceededTimeLimit(now, maxDuration) {
			return nil, nil
		}

		next, events, err := session.ForceEnd(now, expiredSessionReason)
		if err != nil {
			return nil, err
		}

		var payment *domain.Payment
		if pricing == nil {
			err = domain.ErrPricingNotAvailable
		} else {
			var (
				charged      domain.ReadingSession
				chargeEvents domain.Events
			)
			charged, payment, chargeEvents, err = s.charge(next, pricing, now)
			if err == nil {
				next = charged
				events = append(events, chargeEvents...)
			}
		}
		if err != nil {
			if !isUnbillable(err) {
				return nil, err
			}
			// Зависшая сессия закрывается в любом случае, списание разбирается вручную
			s.logger.Error("expired session terminated without charge",
				zap.Stringer("session_id", sessionID),
				zap.Int64("book_id", session.BookID),
				zap.Error(err),
			)
		}

		if err := persistCheckout(ctx, repos, &next, payment); err != nil {
			return nil, err
		}

		terminated = true
		return events, nil
	})

	return terminated, err
}

type sessionTransition func(session domain.ReadingSession, now time.Time) (domain.ReadingSession, domain.Events, error)

func (s *ReadingService) transition(ctx context.Context, userID int64, sessionID uuid.UUID, apply sessionTransition) (domain.ReadingSession, error) {
	var result domain.ReadingSession

	err := s.uow.Run(ctx, func(ctx context.Context, repos domain.Repositories) (domain.Events, error) {
		session, err := loadOwnedSession(ctx, repos.Sessions, userID, sessionID)
		if err != nil {
			return nil, err
		}

		next, events, err := apply(session, s.clock.Now())
		if err != nil {
			return nil, err
		}
		if err := saveSession(ctx, repos.Sessions, &next); err != nil {
			return nil, err
		}

		result = next
		return events, nil
	})

	return result, err
}

func (s *ReadingService) checkout(ctx context.Context, userID int64, sessionID uuid.UUID, closeSession sessionTransition) (domain.Checkout, error) {
	current, err := loadOwnedSession(ctx, s.repos.Sessions, userID, sessionID)
	if err != nil {
		return domain.Checkout{}, err
	}

	var pricing *domain.BookPricing
	if current.Status.IsOpen() {
		// Тариф запрашивается до транзакции, чтобы не держать ее на время HTTP запроса
		pricing, err = s.catalog.GetBookPricing(ctx, current.BookID)
		if err != nil {
			return domain.Checkout{}, err
		}
	}

	var result domain.Checkout
	err = s.uow.Run(ctx, func(ctx context.Context, repos domain.Repositories) (domain.Events, error) {
		result = domain.Checkout{}

		session, err := loadOwnedSession(ctx, repos.Sessions, userID, sessionID)
		if err != nil {
			return nil, err
		}
		wasOpen := session.Status.IsOpen()

		now := s.clock.Now()
		next, events, err := closeSession(session, now)
		if err != nil {
			return nil, err
		}

		var payment *domain.Payment
		if wasOpen {
			if pricing == nil {
				return nil, domain.ErrPricingNotAvailable
			}

			var chargeEvents domain.Events
			next, payment, chargeEvents, err = s.charge(next, pricing, now)
			if err != nil {
				return nil, err
			}
			events = append(events, chargeEvents...)
		}

		if err := persistCheckout(ctx, repos, &next, payment); err != nil {
			return nil, err
		}

		result = domain.Checkout{Session: next, Payment: payment}
		return events, nil
	})

	return result, err
}

// charge считает стоимость закрытой сессии и создает по ней платеж.
// Нулевая стоимость не порождает ни списания, ни платежа.
func (s *ReadingService) charge(session domain.ReadingSession, pricing *domain.BookPricing, now time.Time) (domain.ReadingSession, *domain.Payment, domain.Events, error) {
	var (
		amount domain.Money
		err    error
	)

	switch pricing.ChargeKind {
	case domain.PaymentKindPerPage:
		amount, err = session.CalculatePageCharges(pricing.PricePerPage, pricing.TotalPages)
	case domain.PaymentKindPerHour:
		amount, err = session.CalculateTimeCharges(pricing.PricePerHour)
	default:
		err = fmt.Errorf("%w: unsupported charge kind %q", domain.ErrPricingNotAvailable, pricing.ChargeKind)
	}
	if err != nil {
		return session, nil, nil, err
	}

	if !amount.IsPositive() {
		return session, nil, nil, nil
	}

	charged, events, err := session.RecordCharge(now, amount, pricing.ChargeKind)
	if err != nil {
		return session, nil, nil, err
	}

	payment, paymentEvents, err := domain.NewSessionPayment(fixedNow(now), session, amount, pricing.ChargeKind, s.provider)
	if err != nil {
		return session, nil, nil, err
	}

	return charged, &payment, append(events, paymentEvents...), nil
}

func loadOwnedSession(ctx context.Context, repo domain.SessionRepository, userID int64, sessionID uuid.UUID) (domain.ReadingSession, error) {
	session, err := repo.GetSession(ctx, sessionID)
	if err != nil {
		return domain.ReadingSession{}, err
	}
	if !session.IsOwnedBy(userID) {
		return domain.ReadingSession{}, domain.ErrSessionNotFound
	}
	return session, nil
}

// isUnbillable отличает ошибки тарифа и данных сессии, которые повтор не исправит
func isUnbillable(err error) bool {
	return errors.Is(err, domain.ErrPricingNotAvailable) ||
		errors.Is(err, domain.ErrInvalidOperation) ||
		errors.Is(err, domain.ErrInvalidArgument)
}

// persistCheckout сохраняет закрытую сессию и платеж по ней, если он есть
func persistCheckout(ctx context.Context, repos domain.Repositories, session *domain.ReadingSession, payment *domain.Payment) error {
	if err := saveSession(ctx, repos.Sessions, session); err != nil {
		return err
	}
	if payment == nil {
		return nil
	}
	return repos.Payments.CreatePayment(ctx, *payment)
}

func saveSession(ctx context.Context, repo domain.SessionRepository, session *domain.ReadingSession) error {
	if err := repo.UpdateSession(ctx, *session); err != nil {
		return err
	}
	session.Version++
	return nil
}

func fixedNow(now time.Time) domain.Clock {
	return domain.FixedClock{At: now}
}
