package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarningsRepository_UpsertEarning(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEarningsRepository(mock)
	ctx := context.Background()

	earning := domain.AuthorEarning{
		PaymentID:      uuid.New(),
		AuthorID:       5,
		BookID:         10,
		Gross:          domain.MustMoney("70", "USD"),
		Refunded:       domain.MustMoney("28", "USD"),
		Net:            domain.MustMoney("42", "USD"),
		CommissionRate: "0.3",
		UpdatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(`INSERT INTO author_earnings (.+) ON CONFLICT \(payment_id\) DO UPDATE`).
		WithArgs(earning.PaymentID, int64(5), int64(10), "70.00", "28.00", "42.00", "USD", "0.3", earning.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.UpsertEarning(ctx, earning)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEarningsRepository_GetEarning(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEarningsRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		paymentID := uuid.New()
		updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		rows := pgxmock.NewRows([]string{"payment_id", "author_id", "book_id", "gross", "refunded", "net", "currency", "commission_rate", "updated_at"}).
			AddRow(paymentID, int64(5), int64(10), "70.00", "0.00", "70.00", "USD", "0.3000", updated)

		mock.ExpectQuery(`FROM author_earnings\s+WHERE payment_id = \$1`).
			WithArgs(paymentID).
			WillReturnRows(rows)

		e, err := repo.GetEarning(ctx, paymentID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), e.AuthorID)
		assert.True(t, e.Net.Equal(domain.MustMoney("70", "USD")))
		assert.True(t, e.Refunded.IsZero())
		assert.Equal(t, "0.3000", e.CommissionRate)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		paymentID := uuid.New()

		mock.ExpectQuery(`FROM author_earnings\s+WHERE payment_id = \$1`).
			WithArgs(paymentID).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetEarning(ctx, paymentID)
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
