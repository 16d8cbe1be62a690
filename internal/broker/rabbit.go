package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Channel подмножество методов amqp.Channel, которое использует публикатор
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Envelope формат сообщения о доменном событии в обменнике
type Envelope struct {
	Kind        domain.EventKind `json:"kind"`
	OccurredOn  time.Time        `json:"occurredOn"`
	AggregateID uuid.UUID        `json:"aggregateId"`
	Payload     domain.Event     `json:"payload"`
}

// RabbitPublisher публикует доменные события в topic exchange.
// Ключ маршрутизации совпадает с типом события.
type RabbitPublisher struct {
	ch       Channel
	exchange string
	logger   *zap.Logger
}

// NewRabbitPublisher объявляет обменник и создает публикатор
func NewRabbitPublisher(ch Channel, exchange string, logger *zap.Logger) (*RabbitPublisher, error) {
	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("broker: declare exchange %s: %w", exchange, err)
	}

	return &RabbitPublisher{ch: ch, exchange: exchange, logger: logger}, nil
}

// Handle публикует событие; используется как обработчик диспетчера
func (p *RabbitPublisher) Handle(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(Envelope{
		Kind:        event.Kind(),
		OccurredOn:  event.OccurredOn(),
		AggregateID: event.AggregateID(),
		Payload:     event,
	})
	if err != nil {
		return fmt.Errorf("broker: marshal %s: %w", event.Kind(), err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredOn(),
		MessageId:    uuid.NewString(),
		Type:         string(event.Kind()),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, string(event.Kind()), false, false, msg); err != nil {
		return fmt.Errorf("broker: publish %s: %w", event.Kind(), err)
	}

	p.logger.Debug("event published",
		zap.String("exchange", p.exchange),
		zap.String("kind", string(event.Kind())),
	)

	return nil
}

// DialRabbit открывает соединение и канал RabbitMQ
func DialRabbit(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("broker: dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("broker: open channel: %w", err)
	}

	return conn, ch, nil
}
