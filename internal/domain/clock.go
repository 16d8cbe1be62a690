package domain

import "time"

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// SystemClock возвращает текущее время в UTC
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock всегда возвращает одно и то же время
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
