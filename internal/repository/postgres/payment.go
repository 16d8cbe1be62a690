package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, user_id, book_id, amount::text, currency, kind, status, provider,
		external_transaction_id, processed_at, failure_reason, refunded_amount::text, refunded_at,
		reading_session_id, created_at, version`

// PaymentRepository реализует domain.PaymentRepository
type PaymentRepository struct {
	db DBTX
}

// NewPaymentRepository создает новый PaymentRepository
func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePayment сохраняет новый платеж
func (r *PaymentRepository) CreatePayment(ctx context.Context, p domain.Payment) error {
	refunded, _ := moneyColumns(p.RefundedAmount)

	_, err := r.db.Exec(ctx,
		`INSERT INTO payments (id, user_id, book_id, amount, currency, kind, status, provider,
			external_transaction_id, processed_at, failure_reason, refunded_amount, refunded_at,
			reading_session_id, created_at, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 0)`,
		p.ID, p.UserID, p.BookID, p.Amount.Amount().StringFixed(2), p.Amount.Currency(),
		string(p.PaymentKind), string(p.Status), string(p.Provider),
		p.ExternalTransactionID, p.ProcessedAt, p.FailureReason, refunded, p.RefundedAt,
		p.ReadingSessionID, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to create payment %s: %w", p.ID, err)
	}

	return nil
}

// GetPayment получает платеж по ID
func (r *PaymentRepository) GetPayment(ctx context.Context, id uuid.UUID) (domain.Payment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+`
		 FROM payments
		 WHERE id = $1`,
		id,
	)

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Payment{}, domain.ErrPaymentNotFound
		}
		return domain.Payment{}, fmt.Errorf("repository: failed to get payment %s: %w", id, err)
	}

	return p, nil
}

// GetPaymentByExternalID получает платеж по идентификатору транзакции провайдера
func (r *PaymentRepository) GetPaymentByExternalID(ctx context.Context, externalID string) (domain.Payment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+`
		 FROM payments
		 WHERE external_transaction_id = $1`,
		externalID,
	)

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Payment{}, domain.ErrPaymentNotFound
		}
		return domain.Payment{}, fmt.Errorf("repository: failed to get payment by external id %s: %w", externalID, err)
	}

	return p, nil
}

// UpdatePayment сохраняет новое состояние платежа, если его версия не изменилась
func (r *PaymentRepository) UpdatePayment(ctx context.Context, p domain.Payment) error {
	refunded, _ := moneyColumns(p.RefundedAmount)

	result, err := r.db.Exec(ctx,
		`UPDATE payments
		 SET status = $1, external_transaction_id = $2, processed_at = $3, failure_reason = $4,
			refunded_amount = $5, refunded_at = $6, reading_session_id = $7,
			version = version + 1, updated_at = NOW()
		 WHERE id = $8 AND version = $9`,
		string(p.Status), p.ExternalTransactionID, p.ProcessedAt, p.FailureReason,
		refunded, p.RefundedAt, p.ReadingSessionID,
		p.ID, p.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: external transaction id already used", domain.ErrInvalidOperation)
		}
		return fmt.Errorf("repository: failed to update payment %s: %w", p.ID, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrConcurrentUpdate
	}

	return nil
}

// GetPaymentsByUserID получает все платежи пользователя, новые первыми
func (r *PaymentRepository) GetPaymentsByUserID(ctx context.Context, userID int64) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+`
		 FROM payments
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get payments for user %d: %w", userID, err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating payments: %w", err)
	}

	return payments, nil
}

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var (
		p                      domain.Payment
		amount, currency       string
		kind, status, provider string
		refunded               *string
	)

	err := row.Scan(&p.ID, &p.UserID, &p.BookID, &amount, &currency, &kind, &status, &provider,
		&p.ExternalTransactionID, &p.ProcessedAt, &p.FailureReason, &refunded, &p.RefundedAt,
		&p.ReadingSessionID, &p.CreatedAt, &p.Version)
	if err != nil {
		return domain.Payment{}, err
	}

	if p.Amount, err = domain.ParseMoney(amount, currency); err != nil {
		return domain.Payment{}, err
	}
	if p.PaymentKind, err = domain.ParsePaymentKind(kind); err != nil {
		return domain.Payment{}, err
	}
	if p.Status, err = domain.ParsePaymentStatus(status); err != nil {
		return domain.Payment{}, err
	}
	if p.Provider, err = domain.ParsePaymentProvider(provider); err != nil {
		return domain.Payment{}, err
	}
	if p.RefundedAmount, err = nullableMoney(refunded, &currency); err != nil {
		return domain.Payment{}, err
	}

	return p, nil
}
