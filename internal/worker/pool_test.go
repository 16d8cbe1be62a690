package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	domainmocks "github.com/avc/reading-billing/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		Workers:      1,
		QueueSize:    10,
		ScanInterval: 10 * time.Millisecond,
		MaxDuration:  4 * time.Hour,
		BatchSize:    50,
	}
}

func newTestPool(t *testing.T, opts Options) (*Pool, *domainmocks.SessionRepositoryMock, *domainmocks.ReadingServiceMock) {
	sessions := domainmocks.NewSessionRepositoryMock(t)
	reading := domainmocks.NewReadingServiceMock(t)
	pool := NewPool(opts, sessions, reading, domain.FixedClock{At: testNow}, prometheus.NewRegistry(), zap.NewNop())
	return pool, sessions, reading
}

func TestPool_ExpireSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Terminated", func(t *testing.T) {
		pool, _, reading := newTestPool(t, testOptions())
		id := uuid.New()

		reading.EXPECT().ExpireSession(mock.Anything, id, 4*time.Hour).Return(true, nil).Once()

		pool.expireSession(ctx, id)
		assert.Equal(t, 1.0, testutil.ToFloat64(pool.terminated))
	})

	t.Run("Terminated with dispatch failure still counts", func(t *testing.T) {
		pool, _, reading := newTestPool(t, testOptions())
		id := uuid.New()

		reading.EXPECT().ExpireSession(mock.Anything, id, 4*time.Hour).
			Return(true, &domain.DispatchError{Kind: domain.EventSessionTerminated, Err: errors.New("down")}).Once()

		pool.expireSession(ctx, id)
		assert.Equal(t, 1.0, testutil.ToFloat64(pool.terminated))
	})

	t.Run("Not expired", func(t *testing.T) {
		pool, _, reading := newTestPool(t, testOptions())
		id := uuid.New()

		reading.EXPECT().ExpireSession(mock.Anything, id, 4*time.Hour).Return(false, nil).Once()

		pool.expireSession(ctx, id)
		assert.Equal(t, 0.0, testutil.ToFloat64(pool.terminated))
	})

	t.Run("Storage error", func(t *testing.T) {
		pool, _, reading := newTestPool(t, testOptions())
		id := uuid.New()

		reading.EXPECT().ExpireSession(mock.Anything, id, 4*time.Hour).Return(false, errors.New("db error")).Once()

		pool.expireSession(ctx, id)
		assert.Equal(t, 0.0, testutil.ToFloat64(pool.terminated))
	})
}

func TestPool_ScanExpiredSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("Queues expired sessions", func(t *testing.T) {
		pool, sessions, _ := newTestPool(t, testOptions())
		ids := []uuid.UUID{uuid.New(), uuid.New()}

		sessions.EXPECT().GetExpiredSessionIDs(mock.Anything, testNow.Add(-4*time.Hour), 50).Return(ids, nil).Once()

		pool.scanExpiredSessions(ctx)
		assert.Equal(t, ids[0], <-pool.queue)
		assert.Equal(t, ids[1], <-pool.queue)
	})

	t.Run("Full queue skips the rest", func(t *testing.T) {
		opts := testOptions()
		opts.QueueSize = 1
		pool, sessions, _ := newTestPool(t, opts)
		ids := []uuid.UUID{uuid.New(), uuid.New()}

		sessions.EXPECT().GetExpiredSessionIDs(mock.Anything, mock.Anything, 50).Return(ids, nil).Once()

		pool.scanExpiredSessions(ctx)
		assert.Len(t, pool.queue, 1)
	})

	t.Run("Repository error", func(t *testing.T) {
		pool, sessions, _ := newTestPool(t, testOptions())

		sessions.EXPECT().GetExpiredSessionIDs(mock.Anything, mock.Anything, 50).Return(nil, errors.New("db error")).Once()

		pool.scanExpiredSessions(ctx)
		assert.Len(t, pool.queue, 0)
	})
}

func TestPool_StartStop(t *testing.T) {
	pool, sessions, reading := newTestPool(t, testOptions())
	id := uuid.New()

	done := make(chan struct{})
	sessions.EXPECT().GetExpiredSessionIDs(mock.Anything, mock.Anything, 50).Return([]uuid.UUID{id}, nil).Once()
	sessions.EXPECT().GetExpiredSessionIDs(mock.Anything, mock.Anything, 50).Return(nil, nil).Maybe()
	reading.EXPECT().ExpireSession(mock.Anything, id, 4*time.Hour).
		Run(func(ctx context.Context, sessionID uuid.UUID, maxDuration time.Duration) { close(done) }).
		Return(true, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session was not expired")
	}

	cancel()
	pool.Stop()
	assert.Equal(t, 1.0, testutil.ToFloat64(pool.terminated))
}
