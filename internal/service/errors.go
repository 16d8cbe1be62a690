package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrCatalogUnavailable возвращается, если каталог не ответил после всех повторов
var ErrCatalogUnavailable = errors.New("catalog service unavailable")

// RateLimitError представляет ошибку превышения лимита запросов
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// NewRateLimitError создает новую ошибку rate limit
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}
