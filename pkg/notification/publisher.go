package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/placelists/placelists/pkg/model"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NewPublisher opens a channel on the connection and declares the durable queue notifications are
// published to.
func NewPublisher(conn *amqp.Connection, queue string) (*Publisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open AMQP channel: %v", err)
	}

	if _, err := declareQueue(channel, queue); err != nil {
		return nil, err
	}

	return &Publisher{channel: channel, queue: queue}, nil
}

// Publisher queues batches of notifications on RabbitMQ. Each batch is one message.
type Publisher struct {
	mu      sync.Mutex
	channel *amqp.Channel
	queue   string
}

func (p *Publisher) Deliver(ctx context.Context, notifications []model.Notification) error {
	body, err := json.Marshal(notifications)
	if err != nil {
		return fmt.Errorf("failed to marshal notifications: %v", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notifications to queue %q: %v", p.queue, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.channel.Close()
}

func declareQueue(channel *amqp.Channel, queue string) (amqp.Queue, error) {
	q, err := channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return q, fmt.Errorf("failed to declare queue %q: %v", queue, err)
	}
	return q, nil
}
