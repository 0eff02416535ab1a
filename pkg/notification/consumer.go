package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/placelists/placelists/pkg/model"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NewConsumer opens a channel on the connection and declares the queue to consume from. Consumed
// batches are handed to the store.
func NewConsumer(logger *slog.Logger, conn *amqp.Connection, queue string, store Sink) (*Consumer, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open AMQP channel: %v", err)
	}

	if _, err := declareQueue(channel, queue); err != nil {
		return nil, err
	}

	return &Consumer{logger: logger, channel: channel, queue: queue, store: store}, nil
}

// Consumer persists the notification batches queued by a [Publisher].
type Consumer struct {
	logger  *slog.Logger
	channel *amqp.Channel
	queue   string
	store   Sink
}

const consumerTag = "placelists-notifications"

// Consume blocks until ctx is canceled or the channel is closed.
func (c *Consumer) Consume(ctx context.Context) error {
	deliveries, err := c.channel.ConsumeWithContext(ctx, c.queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue %q: %v", c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return c.channel.Close()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel of queue %q closed", c.queue)
			}
			c.handle(ctx, d)
		}
	}
}

// handle acknowledges a delivery once its notifications are stored. Deliveries that can't be
// decoded or stored are rejected without requeueing.
func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	logger := c.logger.With("queue", c.queue, "messageId", d.MessageId)

	var notifications []model.Notification
	if err := json.Unmarshal(d.Body, &notifications); err != nil {
		logger.ErrorContext(ctx, "Error unmarshalling notifications", "error", err)
		if err := d.Nack(false, false); err != nil {
			logger.ErrorContext(ctx, "Error negatively acknowledging notifications", "error", err)
		}
		return
	}

	if err := c.store.Deliver(ctx, notifications); err != nil {
		logger.ErrorContext(ctx, "Error storing notifications", "recipients", len(notifications), "error", err)
		if err := d.Nack(false, false); err != nil {
			logger.ErrorContext(ctx, "Error negatively acknowledging notifications", "error", err)
		}
		return
	}

	if err := d.Ack(false); err != nil {
		logger.ErrorContext(ctx, "Error acknowledging notifications", "error", err)
	}
}
