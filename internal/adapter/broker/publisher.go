package broker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher publishes to a durable queue through the default exchange.
// The channel is reopened lazily after the broker drops it.
type RabbitPublisher struct {
	url    string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitPublisher dials url and opens a channel.
func NewRabbitPublisher(url string, logger *slog.Logger) (*RabbitPublisher, error) {
	p := &RabbitPublisher{url: url, logger: logger.With("component", "rabbitmq_publisher")}
	if err := p.connect(); err != nil {
		return nil, err
	}
	p.logger.Info("connected to broker")
	return p, nil
}

func (p *RabbitPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	p.conn, p.ch = conn, ch
	return nil
}

// Publish sends body to queue as a persistent JSON message. The queue is
// declared durable on every call; declaration is idempotent.
func (p *RabbitPublisher) Publish(ctx context.Context, queue string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		p.closeLocked()
		if err := p.connect(); err != nil {
			return err
		}
	}

	if _, err := p.ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq queue declare %s: %w", queue, err)
	}

	err := p.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "publish failed", slog.String("queue", queue), slog.String("error", err.Error()))
		return fmt.Errorf("rabbitmq publish %s: %w", queue, err)
	}

	p.logger.DebugContext(ctx, "message published", slog.String("queue", queue), slog.Int("bytes", len(body)))
	return nil
}

// Close closes the channel and the connection.
func (p *RabbitPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	p.logger.Info("broker connection closed")
}

func (p *RabbitPublisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// LogPublisher logs messages instead of sending them. Used when no broker is
// configured so sign-up and reset flows keep working in development.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "log_publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, queue string, body []byte) error {
	p.logger.InfoContext(ctx, "broker disabled, message not sent",
		slog.String("queue", queue),
		slog.String("body", string(body)),
	)
	return nil
}

func (p *LogPublisher) Close() {}
