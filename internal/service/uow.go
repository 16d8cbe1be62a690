package service

import (
	"context"
	"errors"

	"github.com/avc/reading-billing/internal/domain"
	"go.uber.org/zap"
)

// maxConcurrentRetries число повторов единицы работы при конфликте версий
const maxConcurrentRetries = 3

// WorkFunc изменяет агрегаты через repos и возвращает порожденные события
type WorkFunc func(ctx context.Context, repos domain.Repositories) (domain.Events, error)

// UnitOfWork выполняет изменения в транзакции и после фиксации
// доставляет события в порядке их появления
type UnitOfWork struct {
	transactor domain.Transactor
	dispatcher domain.EventDispatcher
	logger     *zap.Logger
}

// NewUnitOfWork создает новый UnitOfWork
func NewUnitOfWork(transactor domain.Transactor, dispatcher domain.EventDispatcher, logger *zap.Logger) *UnitOfWork {
	return &UnitOfWork{
		transactor: transactor,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Run выполняет fn в транзакции. При ErrConcurrentUpdate fn выполняется заново.
// Если транзакция не зафиксирована, события не доставляются.
// Ошибка доставки удовлетворяет errors.Is(err, domain.ErrDispatchFailure), состояние при этом
// уже сохранено. На каждое событие с отказавшими обработчиками в ней есть свой *domain.DispatchError.
func (u *UnitOfWork) Run(ctx context.Context, fn WorkFunc) error {
	var (
		captured domain.Events
		err      error
	)

	for attempt := 1; attempt <= maxConcurrentRetries; attempt++ {
		captured = nil
		err = u.transactor.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
			events, err := fn(ctx, repos)
			if err != nil {
				return err
			}
			captured = events
			return nil
		})
		if !errors.Is(err, domain.ErrConcurrentUpdate) {
			break
		}
		u.logger.Debug("concurrent update, retrying unit of work", zap.Int("attempt", attempt))
	}
	if err != nil {
		return err
	}

	if len(captured) == 0 {
		return nil
	}

	if err := u.dispatcher.Dispatch(ctx, captured); err != nil {
		u.logger.Warn("state committed but event dispatch failed",
			zap.Int("events", len(captured)),
			zap.Error(err),
		)
		return err
	}

	return nil
}
