package events

import (
	"context"

	"github.com/avc/reading-billing/internal/domain"
	"go.uber.org/zap"
)

// LogHandler пишет каждое событие в debug-лог
func LogHandler(logger *zap.Logger) HandlerFunc {
	return func(_ context.Context, event domain.Event) error {
		logger.Debug("domain event",
			zap.String("kind", string(event.Kind())),
			zap.Stringer("aggregate_id", event.AggregateID()),
			zap.Time("occurred_on", event.OccurredOn()),
		)
		return nil
	}
}
