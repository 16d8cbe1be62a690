package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func startSession(t *testing.T) ReadingSession {
	t.Helper()
	s, events, err := StartReadingSession(FixedClock{At: testStart}, 1, 42)
	require.NoError(t, err)
	require.Len(t, events, 1)
	return s
}

func TestStartReadingSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, events, err := StartReadingSession(FixedClock{At: testStart}, 1, 42)
		require.NoError(t, err)
		assert.Equal(t, SessionStatusActive, s.Status)
		assert.Equal(t, testStart, s.StartTime)
		assert.Nil(t, s.EndTime)

		require.Len(t, events, 1)
		started, ok := events[0].(SessionStarted)
		require.True(t, ok)
		assert.Equal(t, EventSessionStarted, started.Kind())
		assert.Equal(t, s.ID, started.AggregateID())
		assert.Equal(t, testStart, started.StartTime)
	})

	t.Run("Invalid ids", func(t *testing.T) {
		_, _, err := StartReadingSession(FixedClock{At: testStart}, 0, 42)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, _, err = StartReadingSession(FixedClock{At: testStart}, 1, -1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestReadingSession_UpdateProgress(t *testing.T) {
	now := testStart.Add(5 * time.Minute)

	t.Run("Success", func(t *testing.T) {
		s := startSession(t)
		s, events, err := s.UpdateProgress(now, 10, 10)
		require.NoError(t, err)
		assert.Equal(t, 10, s.PagesRead)
		assert.Equal(t, 10, s.LastPageRead)

		require.Len(t, events, 1)
		ev := events[0].(ProgressUpdated)
		assert.Equal(t, 0, ev.PreviousPagesRead)
		assert.Equal(t, 10, ev.TotalPagesRead)
	})

	t.Run("No event when pages unchanged", func(t *testing.T) {
		s := startSession(t)
		s, _, err := s.UpdateProgress(now, 10, 10)
		require.NoError(t, err)

		s, events, err := s.UpdateProgress(now, 3, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
		assert.Equal(t, 3, s.LastPageRead)
	})

	t.Run("Pages read never decrease", func(t *testing.T) {
		s := startSession(t)
		totals := []int{1, 5, 5, 9, 20}
		for _, total := range totals {
			next, _, err := s.UpdateProgress(now, total, total)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, next.PagesRead, s.PagesRead)
			s = next
		}

		unchanged, _, err := s.UpdateProgress(now, 1, 19)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, 20, unchanged.PagesRead)
	})

	t.Run("Negative page", func(t *testing.T) {
		_, _, err := startSession(t).UpdateProgress(now, -1, 1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Paused session", func(t *testing.T) {
		s, _, err := startSession(t).Pause(now)
		require.NoError(t, err)

		_, _, err = s.UpdateProgress(now, 1, 1)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})
}

func TestReadingSession_PauseResume(t *testing.T) {
	now := testStart.Add(time.Minute)

	t.Run("Pause and resume", func(t *testing.T) {
		s, events, err := startSession(t).Pause(now)
		require.NoError(t, err)
		assert.Equal(t, SessionStatusPaused, s.Status)
		assert.Equal(t, EventSessionPaused, events[0].Kind())

		s, events, err = s.Resume(now)
		require.NoError(t, err)
		assert.Equal(t, SessionStatusActive, s.Status)
		assert.Equal(t, EventSessionResumed, events[0].Kind())
	})

	t.Run("Pause paused session", func(t *testing.T) {
		s, _, _ := startSession(t).Pause(now)
		_, _, err := s.Pause(now)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("Resume active session", func(t *testing.T) {
		_, _, err := startSession(t).Resume(now)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})
}

func TestReadingSession_End(t *testing.T) {
	now := testStart.Add(90*time.Minute + 30*time.Second)

	t.Run("Active session", func(t *testing.T) {
		s, events, err := startSession(t).End(now)
		require.NoError(t, err)
		assert.Equal(t, SessionStatusCompleted, s.Status)
		require.NotNil(t, s.EndTime)
		assert.Equal(t, now, *s.EndTime)
		assert.Equal(t, 90, s.TimeSpentMinutes)
		assert.False(t, s.IsCompleted)

		ended := events[0].(SessionEnded)
		assert.Equal(t, 90, ended.TimeSpentMinutes)
		assert.Equal(t, testStart, ended.StartTime)
	})

	t.Run("Paused session", func(t *testing.T) {
		s, _, _ := startSession(t).Pause(now)
		s, _, err := s.End(now)
		require.NoError(t, err)
		assert.Equal(t, SessionStatusCompleted, s.Status)
	})

	t.Run("Already ended", func(t *testing.T) {
		s, _, err := startSession(t).End(now)
		require.NoError(t, err)

		_, _, err = s.End(now.Add(time.Hour))
		assert.ErrorIs(t, err, ErrInvalidOperation)
		assert.Equal(t, now, *s.EndTime)
	})
}

func TestReadingSession_MarkCompleted(t *testing.T) {
	now := testStart.Add(30 * time.Minute)

	t.Run("Active session ends first", func(t *testing.T) {
		s, events, err := startSession(t).MarkCompleted(now)
		require.NoError(t, err)
		assert.True(t, s.IsCompleted)
		assert.Equal(t, SessionStatusCompleted, s.Status)
		require.NotNil(t, s.EndTime)

		require.Len(t, events, 2)
		assert.Equal(t, EventSessionEnded, events[0].Kind())
		assert.Equal(t, EventSessionCompleted, events[1].Kind())
	})

	t.Run("Already ended session", func(t *testing.T) {
		s, _, _ := startSession(t).End(now)
		s, events, err := s.MarkCompleted(now)
		require.NoError(t, err)
		assert.True(t, s.IsCompleted)
		require.Len(t, events, 1)
		assert.Equal(t, EventSessionCompleted, events[0].Kind())
	})

	t.Run("Already completed", func(t *testing.T) {
		s, _, _ := startSession(t).MarkCompleted(now)
		_, _, err := s.MarkCompleted(now)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("Terminated session", func(t *testing.T) {
		s, _, _ := startSession(t).ForceEnd(now, "timeout")
		_, _, err := s.MarkCompleted(now)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})
}

func TestReadingSession_ForceEnd(t *testing.T) {
	now := testStart.Add(5 * time.Hour)

	t.Run("Paused then terminated", func(t *testing.T) {
		s, _, err := startSession(t).Pause(testStart.Add(time.Minute))
		require.NoError(t, err)

		s, events, err := s.ForceEnd(now, "timeout")
		require.NoError(t, err)
		assert.Equal(t, SessionStatusTerminated, s.Status)
		require.NotNil(t, s.EndTime)
		assert.Equal(t, now, *s.EndTime)
		assert.Equal(t, "timeout", events[0].(SessionTerminated).Reason)

		_, _, err = s.UpdateProgress(now, 1, 1)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("Completed session", func(t *testing.T) {
		s, _, _ := startSession(t).End(now)
		_, _, err := s.ForceEnd(now, "timeout")
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("Empty reason", func(t *testing.T) {
		_, _, err := startSession(t).ForceEnd(now, " ")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestReadingSession_RecordCharge(t *testing.T) {
	now := testStart.Add(time.Hour)

	t.Run("Accumulates", func(t *testing.T) {
		s := startSession(t)
		s, events, err := s.RecordCharge(now, MustMoney("1.50", "USD"), PaymentKindPerPage)
		require.NoError(t, err)
		assert.Equal(t, "1.50 USD", s.ChargedAmount.String())
		assert.Equal(t, PaymentKindPerPage, *s.ChargeType)
		assert.Equal(t, EventSessionCharged, events[0].Kind())

		s, events, err = s.RecordCharge(now, MustMoney("2.00", "USD"), PaymentKindPerPage)
		require.NoError(t, err)
		assert.Equal(t, "3.50 USD", s.ChargedAmount.String())
		assert.Equal(t, "3.50 USD", events[0].(SessionCharged).TotalCharged.String())
	})

	t.Run("Double invocation doubles the charge", func(t *testing.T) {
		s := startSession(t)
		batch := MustMoney("1.00", "USD")
		s, _, _ = s.RecordCharge(now, batch, PaymentKindPerHour)
		s, _, _ = s.RecordCharge(now, batch, PaymentKindPerHour)
		assert.Equal(t, "2.00 USD", s.ChargedAmount.String())
	})

	t.Run("Zero amount", func(t *testing.T) {
		_, _, err := startSession(t).RecordCharge(now, MustMoney("0", "USD"), PaymentKindPerPage)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Currency mismatch", func(t *testing.T) {
		s, _, _ := startSession(t).RecordCharge(now, MustMoney("1", "USD"), PaymentKindPerPage)
		_, _, err := s.RecordCharge(now, MustMoney("1", "EUR"), PaymentKindPerPage)
		assert.ErrorIs(t, err, ErrCurrencyMismatch)
		assert.Equal(t, "1.00 USD", s.ChargedAmount.String())
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, _, err := startSession(t).RecordCharge(now, MustMoney("1", "USD"), PaymentKind("PER_WORD"))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestReadingSession_Charges(t *testing.T) {
	t.Run("Page charge", func(t *testing.T) {
		s, _, err := startSession(t).UpdateProgress(testStart, 10, 10)
		require.NoError(t, err)

		charge, err := s.CalculatePageCharges(MustMoney("0.50", "USD"), 300)
		require.NoError(t, err)
		assert.True(t, charge.Equal(MustMoney("5.00", "USD")))
	})

	t.Run("Pages exceed book", func(t *testing.T) {
		s, _, _ := startSession(t).UpdateProgress(testStart, 10, 10)
		_, err := s.CalculatePageCharges(MustMoney("0.50", "USD"), 5)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("Time charge", func(t *testing.T) {
		s, _, err := startSession(t).End(testStart.Add(30 * time.Minute))
		require.NoError(t, err)

		charge, err := s.CalculateTimeCharges(MustMoney("12.00", "USD"))
		require.NoError(t, err)
		assert.True(t, charge.Equal(MustMoney("6.00", "USD")))
	})

	t.Run("Time charge rounds", func(t *testing.T) {
		s, _, _ := startSession(t).End(testStart.Add(7 * time.Minute))
		charge, err := s.CalculateTimeCharges(MustMoney("10.00", "USD"))
		require.NoError(t, err)
		assert.Equal(t, "1.17 USD", charge.String())
	})
}

func TestReadingSession_HasExceededTimeLimit(t *testing.T) {
	s := startSession(t)
	limit := 4 * time.Hour

	assert.False(t, s.HasExceededTimeLimit(testStart.Add(limit), limit))
	assert.True(t, s.HasExceededTimeLimit(testStart.Add(limit+time.Second), limit))

	ended, _, _ := s.End(testStart.Add(time.Hour))
	assert.False(t, ended.HasExceededTimeLimit(testStart.Add(10*time.Hour), limit))
}
