package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpMigrations_Sorted(t *testing.T) {
	names, err := upMigrations()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0001_reading_sessions.up.sql",
		"0002_payments.up.sql",
		"0003_author_earnings.up.sql",
	}, names)
}

func TestRunMigrations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs(migrationLockKey).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS reading_sessions`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS payments`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS author_earnings`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectCommit()

		err := RunMigrations(ctx, mock, zap.NewNop())
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed migration rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs(migrationLockKey).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS reading_sessions`).
			WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		err := RunMigrations(ctx, mock, zap.NewNop())
		assert.ErrorContains(t, err, "0001_reading_sessions.up.sql")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
