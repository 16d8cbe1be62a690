package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTransactor_WithinTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	transactor := NewTransactor(mock, zap.NewNop())
	ctx := context.Background()

	t.Run("Commit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		called := false
		err := transactor.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
			called = true
			assert.NotNil(t, repos.Sessions)
			assert.NotNil(t, repos.Payments)
			assert.NotNil(t, repos.Earnings)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback on error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := transactor.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin failure", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("pool closed"))

		err := transactor.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
			t.Fatal("fn must not be called")
			return nil
		})
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Commit failure", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err := transactor.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
			return nil
		})
		assert.ErrorContains(t, err, "failed to commit")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
