package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/srgjo27/movie_booking/internal/core/domain"
)

const QueueName = "booking.events"

// RabbitMQ publishes booking events to a durable queue on the default
// exchange. A single channel is shared; amqp channels are not safe for
// concurrent publishing, hence the mutex.
type RabbitMQ struct {
	conn *amqp.Connection

	mu sync.Mutex
	ch *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel open: %w", err)
	}

	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	return &RabbitMQ{conn: conn, ch: ch}, nil
}

func (p *RabbitMQ) Publish(ctx context.Context, event domain.BookingEvent) error {
	msg, err := NewMessage(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", QueueName, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq publish %s: %w", event.Type, err)
	}

	return nil
}

func (p *RabbitMQ) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		log.Warn().Err(err).Msg("rabbitmq channel close")
	}
	return p.conn.Close()
}

// NewMessage encodes event as a persistent JSON message.
func NewMessage(event domain.BookingEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(event.Type),
		MessageId:    event.BookingID.String() + ":" + string(event.Type),
		Timestamp:    event.OccurredAt.UTC(),
		Body:         body,
	}, nil
}

// Nop discards events. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, domain.BookingEvent) error { return nil }
