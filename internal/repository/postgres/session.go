package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const sessionColumns = `id, user_id, book_id, start_time, end_time, pages_read, last_page_read,
		time_spent_minutes, is_completed, status, charged_amount::text, charged_currency, charge_type, version`

// SessionRepository реализует domain.SessionRepository
type SessionRepository struct {
	db DBTX
}

// NewSessionRepository создает новый SessionRepository
func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession сохраняет новую сессию.
// Вторая открытая сессия для той же пары (user, book) отклоняется уникальным индексом.
func (r *SessionRepository) CreateSession(ctx context.Context, s domain.ReadingSession) error {
	amount, currency, chargeType := chargeColumns(s)

	_, err := r.db.Exec(ctx,
		`INSERT INTO reading_sessions (id, user_id, book_id, start_time, end_time, pages_read, last_page_read,
			time_spent_minutes, is_completed, status, charged_amount, charged_currency, charge_type, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 0)`,
		s.ID, s.UserID, s.BookID, s.StartTime, s.EndTime, s.PagesRead, s.LastPageRead,
		s.TimeSpentMinutes, s.IsCompleted, string(s.Status), amount, currency, chargeType,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrActiveSessionExists
		}
		return fmt.Errorf("repository: failed to create session for user %d book %d: %w", s.UserID, s.BookID, err)
	}

	return nil
}

// GetSession получает сессию по ID
func (r *SessionRepository) GetSession(ctx context.Context, id uuid.UUID) (domain.ReadingSession, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+`
		 FROM reading_sessions
		 WHERE id = $1`,
		id,
	)

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ReadingSession{}, domain.ErrSessionNotFound
		}
		return domain.ReadingSession{}, fmt.Errorf("repository: failed to get session %s: %w", id, err)
	}

	return s, nil
}

// UpdateSession сохраняет новое состояние сессии, если ее версия не изменилась
func (r *SessionRepository) UpdateSession(ctx context.Context, s domain.ReadingSession) error {
	amount, currency, chargeType := chargeColumns(s)

	result, err := r.db.Exec(ctx,
		`UPDATE reading_sessions
		 SET end_time = $1, pages_read = $2, last_page_read = $3, time_spent_minutes = $4,
			is_completed = $5, status = $6, charged_amount = $7, charged_currency = $8,
			charge_type = $9, version = version + 1, updated_at = NOW()
		 WHERE id = $10 AND version = $11`,
		s.EndTime, s.PagesRead, s.LastPageRead, s.TimeSpentMinutes,
		s.IsCompleted, string(s.Status), amount, currency,
		chargeType, s.ID, s.Version,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update session %s: %w", s.ID, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrConcurrentUpdate
	}

	return nil
}

// FindOpenSession ищет активную или приостановленную сессию пользователя по книге
func (r *SessionRepository) FindOpenSession(ctx context.Context, userID, bookID int64) (domain.ReadingSession, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+`
		 FROM reading_sessions
		 WHERE user_id = $1 AND book_id = $2 AND status IN ($3, $4)`,
		userID, bookID, string(domain.SessionStatusActive), string(domain.SessionStatusPaused),
	)

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ReadingSession{}, domain.ErrSessionNotFound
		}
		return domain.ReadingSession{}, fmt.Errorf("repository: failed to find open session for user %d book %d: %w", userID, bookID, err)
	}

	return s, nil
}

// GetSessionsByUserID получает все сессии пользователя, новые первыми
func (r *SessionRepository) GetSessionsByUserID(ctx context.Context, userID int64) ([]domain.ReadingSession, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+`
		 FROM reading_sessions
		 WHERE user_id = $1
		 ORDER BY start_time DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get sessions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var sessions []domain.ReadingSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating sessions: %w", err)
	}

	return sessions, nil
}

// GetExpiredSessionIDs возвращает открытые сессии, начатые раньше startedBefore
func (r *SessionRepository) GetExpiredSessionIDs(ctx context.Context, startedBefore time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id
		 FROM reading_sessions
		 WHERE status IN ($1, $2) AND start_time < $3
		 ORDER BY start_time ASC
		 LIMIT $4`,
		string(domain.SessionStatusActive), string(domain.SessionStatusPaused), startedBefore, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get expired sessions: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan session id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating expired sessions: %w", err)
	}

	return ids, nil
}

func scanSession(row pgx.Row) (domain.ReadingSession, error) {
	var (
		s          domain.ReadingSession
		status     string
		amount     *string
		currency   *string
		chargeType *string
	)

	err := row.Scan(&s.ID, &s.UserID, &s.BookID, &s.StartTime, &s.EndTime, &s.PagesRead, &s.LastPageRead,
		&s.TimeSpentMinutes, &s.IsCompleted, &status, &amount, &currency, &chargeType, &s.Version)
	if err != nil {
		return domain.ReadingSession{}, err
	}

	if s.Status, err = domain.ParseSessionStatus(status); err != nil {
		return domain.ReadingSession{}, err
	}
	if s.ChargedAmount, err = nullableMoney(amount, currency); err != nil {
		return domain.ReadingSession{}, err
	}
	if chargeType != nil {
		kind, err := domain.ParsePaymentKind(*chargeType)
		if err != nil {
			return domain.ReadingSession{}, err
		}
		s.ChargeType = &kind
	}

	return s, nil
}

func chargeColumns(s domain.ReadingSession) (amount, currency, chargeType *string) {
	amount, currency = moneyColumns(s.ChargedAmount)
	if s.ChargeType != nil {
		kind := string(*s.ChargeType)
		chargeType = &kind
	}
	return amount, currency, chargeType
}
