package broker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/avc/reading-billing/internal/domain"
	"go.uber.org/zap"
)

// NewConsumerGroup создает группу потребителей Kafka
func NewConsumerGroup(brokers []string, groupID string) (sarama.ConsumerGroup, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_6_0_0
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRange()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Net.DialTimeout = 5 * time.Second
	return sarama.NewConsumerGroup(brokers, groupID, cfg)
}

// PaymentStatusConsumer читает статусы платежей от шлюза провайдеров
// и применяет их к платежам
type PaymentStatusConsumer struct {
	group    sarama.ConsumerGroup
	topics   []string
	payments domain.PaymentService
	logger   *zap.Logger
}

// NewPaymentStatusConsumer создает новый PaymentStatusConsumer
func NewPaymentStatusConsumer(group sarama.ConsumerGroup, topics []string, payments domain.PaymentService, logger *zap.Logger) *PaymentStatusConsumer {
	return &PaymentStatusConsumer{
		group:    group,
		topics:   topics,
		payments: payments,
		logger:   logger,
	}
}

// Start потребляет сообщения до отмены ctx
func (c *PaymentStatusConsumer) Start(ctx context.Context) error {
	handler := newStatusHandler(c.payments, c.logger)
	for {
		if err := c.group.Consume(ctx, c.topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return err
		}
		// Consume возвращается при ребалансировке или отмене контекста
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Close закрывает группу потребителей
func (c *PaymentStatusConsumer) Close() error {
	return c.group.Close()
}

const (
	retryBackoffMin = 200 * time.Millisecond
	retryBackoffMax = 30 * time.Second
)

type statusHandler struct {
	payments   domain.PaymentService
	logger     *zap.Logger
	backoffMin time.Duration
	backoffMax time.Duration
}

func newStatusHandler(payments domain.PaymentService, logger *zap.Logger) *statusHandler {
	return &statusHandler{
		payments:   payments,
		logger:     logger,
		backoffMin: retryBackoffMin,
		backoffMax: retryBackoffMax,
	}
}

func (h *statusHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *statusHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim обрабатывает сообщения партиции строго по порядку.
// Временная ошибка повторяется на месте: offset следующего сообщения
// фиксирует и все предыдущие, поэтому пропускать сообщение нельзя.
func (h *statusHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := sess.Context()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if !h.handleWithRetry(ctx, msg) {
				// Сессия закрывается, сообщение будет доставлено заново
				return nil
			}
			sess.MarkMessage(msg, "")
		case <-ctx.Done():
			return nil
		}
	}
}

// handleWithRetry повторяет handle с экспоненциальной задержкой.
// Возвращает false, только если ctx отменен раньше успешной обработки.
func (h *statusHandler) handleWithRetry(ctx context.Context, msg *sarama.ConsumerMessage) bool {
	delay := h.backoffMin
	for attempt := 1; ; attempt++ {
		if h.handle(ctx, msg) {
			return true
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			h.logger.Warn("payment status left uncommitted",
				zap.Int64("offset", msg.Offset),
				zap.Int("attempts", attempt),
			)
			return false
		case <-timer.C:
		}

		delay *= 2
		if delay > h.backoffMax {
			delay = h.backoffMax
		}
	}
}

// handle возвращает true, если сообщение обработано и его offset можно фиксировать.
// Сообщения, которые никогда не удастся применить, фиксируются, чтобы не блокировать партицию.
func (h *statusHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) bool {
	var update domain.ProviderStatusUpdate
	if err := json.Unmarshal(msg.Value, &update); err != nil {
		h.logger.Error("failed to decode payment status",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return true
	}

	payment, err := h.payments.ApplyProviderStatus(ctx, update)
	switch {
	case err == nil:
		h.logger.Info("payment status applied",
			zap.Stringer("payment_id", payment.ID),
			zap.String("status", string(payment.Status)),
		)
		return true

	case errors.Is(err, domain.ErrDispatchFailure):
		h.logger.Warn("payment status applied, event dispatch failed",
			zap.Stringer("payment_id", payment.ID),
			zap.Error(err),
		)
		return true

	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidOperation),
		errors.Is(err, domain.ErrPaymentNotFound):
		h.logger.Error("payment status rejected",
			zap.String("external_transaction_id", update.ExternalTransactionID),
			zap.String("status", string(update.Status)),
			zap.Error(err),
		)
		return true

	default:
		h.logger.Error("failed to apply payment status, will retry",
			zap.String("key", string(msg.Key)),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return false
	}
}
