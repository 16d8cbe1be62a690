package postgres

import (
	"context"
	"fmt"

	"github.com/avc/reading-billing/internal/domain"
	"go.uber.org/zap"
)

// Transactor реализует domain.Transactor поверх pgx транзакций
type Transactor struct {
	db     DBTX
	logger *zap.Logger
}

// NewTransactor создает новый Transactor
func NewTransactor(db DBTX, logger *zap.Logger) *Transactor {
	return &Transactor{db: db, logger: logger}
}

// Repositories возвращает репозитории, работающие вне транзакции (для чтения)
func (t *Transactor) Repositories() domain.Repositories {
	return newRepositories(t.db)
}

// WithinTx выполняет fn в транзакции. Транзакция фиксируется, только если fn вернула nil
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos domain.Repositories) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}

	if err := fn(ctx, newRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			t.logger.Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}

	return nil
}

func newRepositories(db DBTX) domain.Repositories {
	return domain.Repositories{
		Sessions: NewSessionRepository(db),
		Payments: NewPaymentRepository(db),
		Earnings: NewEarningsRepository(db),
	}
}
