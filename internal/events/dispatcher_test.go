package events

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func testEvents(t *testing.T) domain.Events {
	t.Helper()
	clock := domain.FixedClock{At: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s, started, err := domain.StartReadingSession(clock, 1, 2)
	require.NoError(t, err)
	_, paused, err := s.Pause(clock.Now())
	require.NoError(t, err)
	return append(started, paused...)
}

func newTestDispatcher() *Dispatcher {
	logger, _ := zap.NewDevelopment()
	return NewDispatcher(logger, NewMetrics(prometheus.NewRegistry()))
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("Routes by kind in order", func(t *testing.T) {
		d := newTestDispatcher()

		var mu sync.Mutex
		var seen []domain.EventKind
		record := func(_ context.Context, e domain.Event) error {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, e.Kind())
			return nil
		}
		d.Register("recorder", record, domain.EventSessionStarted, domain.EventSessionPaused)

		require.NoError(t, d.Dispatch(context.Background(), testEvents(t)))
		assert.Equal(t, []domain.EventKind{domain.EventSessionStarted, domain.EventSessionPaused}, seen)
	})

	t.Run("No handlers", func(t *testing.T) {
		d := newTestDispatcher()
		assert.NoError(t, d.Dispatch(context.Background(), testEvents(t)))
	})

	t.Run("Empty event list", func(t *testing.T) {
		d := newTestDispatcher()
		d.RegisterAll("never", func(context.Context, domain.Event) error {
			t.Fatal("handler must not be called")
			return nil
		})
		assert.NoError(t, d.Dispatch(context.Background(), nil))
	})

	t.Run("Failing handler does not suppress others", func(t *testing.T) {
		d := newTestDispatcher()

		var calls atomic.Int32
		d.Register("broken", func(context.Context, domain.Event) error {
			return errors.New("smtp down")
		}, domain.EventSessionStarted)
		d.Register("panicking", func(context.Context, domain.Event) error {
			panic("boom")
		}, domain.EventSessionStarted)
		d.RegisterAll("counter", func(context.Context, domain.Event) error {
			calls.Add(1)
			return nil
		})

		err := d.Dispatch(context.Background(), testEvents(t))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDispatchFailure)
		assert.Equal(t, int32(2), calls.Load())

		var dispatchErr *domain.DispatchError
		require.ErrorAs(t, err, &dispatchErr)
		assert.Equal(t, domain.EventSessionStarted, dispatchErr.Kind)
		assert.Contains(t, dispatchErr.Error(), "2 handler(s) failed")
	})

	t.Run("Each failed event reported separately", func(t *testing.T) {
		d := newTestDispatcher()
		d.RegisterAll("broken", func(context.Context, domain.Event) error {
			return errors.New("broker down")
		})

		err := d.Dispatch(context.Background(), testEvents(t))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDispatchFailure)

		var first *domain.DispatchError
		require.ErrorAs(t, err, &first)
		assert.Equal(t, domain.EventSessionStarted, first.Kind)

		var kinds []domain.EventKind
		for _, e := range multierr.Errors(err) {
			var dispatchErr *domain.DispatchError
			require.ErrorAs(t, e, &dispatchErr)
			kinds = append(kinds, dispatchErr.Kind)
		}
		assert.Equal(t, []domain.EventKind{domain.EventSessionStarted, domain.EventSessionPaused}, kinds)
	})

	t.Run("Waits for all handlers", func(t *testing.T) {
		d := newTestDispatcher()

		var done atomic.Int32
		for _, name := range []string{"slow-1", "slow-2", "slow-3"} {
			d.Register(name, func(context.Context, domain.Event) error {
				time.Sleep(20 * time.Millisecond)
				done.Add(1)
				return nil
			}, domain.EventSessionPaused)
		}

		require.NoError(t, d.Dispatch(context.Background(), testEvents(t)))
		assert.Equal(t, int32(3), done.Load())
	})
}

func TestLogHandler(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	for _, e := range testEvents(t) {
		assert.NoError(t, LogHandler(logger)(context.Background(), e))
	}
}
