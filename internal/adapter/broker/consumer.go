package broker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MailHandler processes one decoded MailEvent.
type MailHandler func(ctx context.Context, ev MailEvent) error

// Consumer reads MailEvents from a durable queue.
type Consumer struct {
	url      string
	queue    string
	tag      string
	prefetch int
	logger   *slog.Logger
}

// NewConsumer creates a consumer for queue. Nothing is dialled until Run.
func NewConsumer(url, queue, tag string, logger *slog.Logger) *Consumer {
	return &Consumer{
		url:      url,
		queue:    queue,
		tag:      tag,
		prefetch: 10,
		logger:   logger.With("component", "rabbitmq_consumer", "queue", queue),
	}
}

// Run consumes until ctx is cancelled, reconnecting with a capped backoff
// when the connection drops. It returns ctx.Err() on shutdown.
func (c *Consumer) Run(ctx context.Context, handle MailHandler) error {
	backoff := time.Second
	for {
		err := c.consumeOnce(ctx, handle)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Warn("consume loop ended, reconnecting",
			slog.String("error", errString(err)),
			slog.Duration("backoff", backoff),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func (c *Consumer) consumeOnce(ctx context.Context, handle MailHandler) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.ConsumeWithContext(ctx, c.queue, c.tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}
	c.logger.Info("consuming")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.Handle(ctx, d.Body, handle); err != nil {
				c.logger.Error("handle message failed", slog.String("error", err.Error()))
				// Reject without requeue so a poison message cannot spin.
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// Handle decodes body and passes it to handle.
func (c *Consumer) Handle(ctx context.Context, body []byte, handle MailHandler) error {
	ev, err := DecodeMailEvent(body)
	if err != nil {
		return err
	}
	return handle(ctx, ev)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
