package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// ReadingSession отслеживает чтение одной книги одним пользователем.
//
// Методы-переходы работают со значением: при успехе возвращают новое
// состояние сессии и порожденные события, при ошибке исходная сессия
// остается без изменений.
type ReadingSession struct {
	ID               uuid.UUID     `json:"id"`
	UserID           int64         `json:"userId"`
	BookID           int64         `json:"bookId"`
	StartTime        time.Time     `json:"startTime"`
	EndTime          *time.Time    `json:"endTime,omitempty"`
	PagesRead        int           `json:"pagesRead"`
	LastPageRead     int           `json:"lastPageRead"`
	TimeSpentMinutes int           `json:"timeSpentMinutes"`
	IsCompleted      bool          `json:"isCompleted"`
	Status           SessionStatus `json:"status"`
	ChargedAmount    *Money        `json:"chargedAmount,omitempty"`
	ChargeType       *PaymentKind  `json:"chargeType,omitempty"`
	// Version используется хранилищем для оптимистичной блокировки
	Version int `json:"-"`
}

// StartReadingSession начинает новую активную сессию
func StartReadingSession(clock Clock, userID, bookID int64) (ReadingSession, Events, error) {
	if userID <= 0 {
		return ReadingSession{}, nil, fmt.Errorf("%w: user id must be positive", ErrInvalidArgument)
	}
	if bookID <= 0 {
		return ReadingSession{}, nil, fmt.Errorf("%w: book id must be positive", ErrInvalidArgument)
	}

	now := clock.Now()
	s := ReadingSession{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		StartTime: now,
		Status:    SessionStatusActive,
	}

	return s, Events{SessionStarted{sessionEvent: newSessionEvent(s, now), StartTime: now}}, nil
}

// UpdateProgress фиксирует текущую страницу и общее число прочитанных страниц.
// Событие порождается только если pagesRead вырос.
func (s ReadingSession) UpdateProgress(now time.Time, page, totalPagesRead int) (ReadingSession, Events, error) {
	if s.Status != SessionStatusActive {
		return s, nil, fmt.Errorf("%w: cannot update progress of %s session", ErrInvalidOperation, s.Status)
	}
	if page < 0 {
		return s, nil, fmt.Errorf("%w: page must not be negative", ErrInvalidArgument)
	}
	if totalPagesRead < s.PagesRead {
		return s, nil, fmt.Errorf("%w: pages read cannot decrease from %d to %d",
			ErrInvalidArgument, s.PagesRead, totalPagesRead)
	}

	previous := s.PagesRead
	s.LastPageRead = page
	s.PagesRead = totalPagesRead

	if totalPagesRead == previous {
		return s, nil, nil
	}

	return s, Events{ProgressUpdated{
		sessionEvent:      newSessionEvent(s, now),
		CurrentPage:       page,
		TotalPagesRead:    totalPagesRead,
		PreviousPagesRead: previous,
	}}, nil
}

// Pause приостанавливает активную сессию
func (s ReadingSession) Pause(now time.Time) (ReadingSession, Events, error) {
	if s.Status != SessionStatusActive {
		return s, nil, fmt.Errorf("%w: cannot pause %s session", ErrInvalidOperation, s.Status)
	}
	s.Status = SessionStatusPaused
	return s, Events{SessionPaused{newSessionEvent(s, now)}}, nil
}

// Resume возобновляет приостановленную сессию
func (s ReadingSession) Resume(now time.Time) (ReadingSession, Events, error) {
	if s.Status != SessionStatusPaused {
		return s, nil, fmt.Errorf("%w: cannot resume %s session", ErrInvalidOperation, s.Status)
	}
	s.Status = SessionStatusActive
	return s, Events{SessionResumed{newSessionEvent(s, now)}}, nil
}

// End завершает сессию и фиксирует затраченное время
func (s ReadingSession) End(now time.Time) (ReadingSession, Events, error) {
	if !s.Status.IsOpen() || s.EndTime != nil {
		return s, nil, fmt.Errorf("%w: cannot end %s session", ErrInvalidOperation, s.Status)
	}

	s.close(now)
	s.Status = SessionStatusCompleted

	return s, Events{SessionEnded{
		sessionEvent:     newSessionEvent(s, now),
		StartTime:        s.StartTime,
		EndTime:          *s.EndTime,
		PagesRead:        s.PagesRead,
		TimeSpentMinutes: s.TimeSpentMinutes,
	}}, nil
}

// MarkCompleted отмечает книгу дочитанной. Открытая сессия сначала завершается через End.
func (s ReadingSession) MarkCompleted(now time.Time) (ReadingSession, Events, error) {
	if s.IsCompleted {
		return s, nil, fmt.Errorf("%w: session is already marked completed", ErrInvalidOperation)
	}
	if s.Status == SessionStatusTerminated {
		return s, nil, fmt.Errorf("%w: cannot complete terminated session", ErrInvalidOperation)
	}

	var events Events
	if s.Status.IsOpen() {
		ended, endEvents, err := s.End(now)
		if err != nil {
			return s, nil, err
		}
		s = ended
		events = append(events, endEvents...)
	}

	s.IsCompleted = true
	s.Status = SessionStatusCompleted
	events = append(events, SessionCompletedFlag{sessionEvent: newSessionEvent(s, now), PagesRead: s.PagesRead})

	return s, events, nil
}

// ForceEnd принудительно завершает открытую сессию, например при превышении лимита времени
func (s ReadingSession) ForceEnd(now time.Time, reason string) (ReadingSession, Events, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return s, nil, fmt.Errorf("%w: termination reason is required", ErrInvalidArgument)
	}
	if !s.Status.IsOpen() {
		return s, nil, fmt.Errorf("%w: cannot terminate %s session", ErrInvalidOperation, s.Status)
	}

	if s.EndTime == nil {
		s.close(now)
	}
	s.Status = SessionStatusTerminated

	return s, Events{SessionTerminated{sessionEvent: newSessionEvent(s, now), Reason: reason}}, nil
}

// RecordCharge добавляет списание к сессии. Повторные вызовы накапливаются:
// вызывающий код обязан записывать каждый пакет потребления один раз.
func (s ReadingSession) RecordCharge(now time.Time, amount Money, kind PaymentKind) (ReadingSession, Events, error) {
	if !amount.IsPositive() {
		return s, nil, fmt.Errorf("%w: charge amount must be positive", ErrInvalidArgument)
	}
	if _, err := ParsePaymentKind(string(kind)); err != nil {
		return s, nil, err
	}

	total := amount
	if s.ChargedAmount != nil {
		sum, err := s.ChargedAmount.Add(amount)
		if err != nil {
			return s, nil, err
		}
		total = sum
	}

	s.ChargedAmount = &total
	s.ChargeType = &kind

	return s, Events{SessionCharged{
		sessionEvent: newSessionEvent(s, now),
		Amount:       amount,
		TotalCharged: total,
		ChargeType:   kind,
	}}, nil
}

// CalculatePageCharges считает стоимость прочитанных страниц
func (s ReadingSession) CalculatePageCharges(pricePerPage Money, totalBookPages int) (Money, error) {
	if totalBookPages <= 0 {
		return Money{}, fmt.Errorf("%w: total book pages must be positive", ErrInvalidArgument)
	}
	if s.PagesRead > totalBookPages {
		return Money{}, fmt.Errorf("%w: pages read %d exceed book length %d",
			ErrInvalidOperation, s.PagesRead, totalBookPages)
	}
	return pricePerPage.Multiply(decimal.NewFromInt(int64(s.PagesRead)))
}

// CalculateTimeCharges считает стоимость затраченного времени
func (s ReadingSession) CalculateTimeCharges(pricePerHour Money) (Money, error) {
	hours := decimal.NewFromInt(int64(s.TimeSpentMinutes)).Div(minutesPerHour)
	return pricePerHour.Multiply(hours)
}

// HasExceededTimeLimit предикат, по которому фоновая очистка
// принудительно завершает сессии
func (s ReadingSession) HasExceededTimeLimit(now time.Time, maxDuration time.Duration) bool {
	return s.Status.IsOpen() && now.Sub(s.StartTime) > maxDuration
}

// IsOwnedBy проверяет владельца сессии
func (s ReadingSession) IsOwnedBy(userID int64) bool {
	return s.UserID == userID
}

func (s *ReadingSession) close(now time.Time) {
	end := now
	s.EndTime = &end
	if elapsed := now.Sub(s.StartTime); elapsed > 0 {
		s.TimeSpentMinutes = int(elapsed / time.Minute)
	}
}
