package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EarningsRepository реализует domain.EarningsRepository
type EarningsRepository struct {
	db DBTX
}

// NewEarningsRepository создает новый EarningsRepository
func NewEarningsRepository(db DBTX) *EarningsRepository {
	return &EarningsRepository{db: db}
}

// UpsertEarning создает или пересчитывает доход автора по платежу
func (r *EarningsRepository) UpsertEarning(ctx context.Context, e domain.AuthorEarning) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO author_earnings (payment_id, author_id, book_id, gross, refunded, net, currency, commission_rate, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (payment_id) DO UPDATE
		 SET gross = EXCLUDED.gross, refunded = EXCLUDED.refunded, net = EXCLUDED.net,
			commission_rate = EXCLUDED.commission_rate, updated_at = EXCLUDED.updated_at`,
		e.PaymentID, e.AuthorID, e.BookID,
		e.Gross.Amount().StringFixed(2), e.Refunded.Amount().StringFixed(2), e.Net.Amount().StringFixed(2),
		e.Gross.Currency(), e.CommissionRate, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to upsert earning for payment %s: %w", e.PaymentID, err)
	}

	return nil
}

// GetEarning получает доход автора по платежу
func (r *EarningsRepository) GetEarning(ctx context.Context, paymentID uuid.UUID) (domain.AuthorEarning, error) {
	var (
		e                    domain.AuthorEarning
		gross, refunded, net string
		currency             string
	)

	err := r.db.QueryRow(ctx,
		`SELECT payment_id, author_id, book_id, gross::text, refunded::text, net::text, currency,
			commission_rate::text, updated_at
		 FROM author_earnings
		 WHERE payment_id = $1`,
		paymentID,
	).Scan(&e.PaymentID, &e.AuthorID, &e.BookID, &gross, &refunded, &net, &currency, &e.CommissionRate, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AuthorEarning{}, domain.ErrPaymentNotFound
		}
		return domain.AuthorEarning{}, fmt.Errorf("repository: failed to get earning for payment %s: %w", paymentID, err)
	}

	if e.Gross, err = domain.ParseMoney(gross, currency); err != nil {
		return domain.AuthorEarning{}, err
	}
	if e.Refunded, err = domain.ParseMoney(refunded, currency); err != nil {
		return domain.AuthorEarning{}, err
	}
	if e.Net, err = domain.ParseMoney(net, currency); err != nil {
		return domain.AuthorEarning{}, err
	}

	return e, nil
}
