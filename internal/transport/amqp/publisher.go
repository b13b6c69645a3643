// Package amqp publishes domain events to a RabbitMQ topic exchange.
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/kailas-cloud/roommatch/internal/domain/event"
	"github.com/kailas-cloud/roommatch/internal/logger"
	"github.com/kailas-cloud/roommatch/internal/metrics"
)

// DefaultExchange is used when Config.Exchange is empty.
const DefaultExchange = "roommatch.events"

// ErrClosed is returned after Close or when the broker dropped the channel.
var ErrClosed = errors.New("amqp: publisher closed")

// Config holds publisher connection settings.
type Config struct {
	URL      string
	Exchange string
}

// channel is the subset of *amqp.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// Publisher implements the use case EventPublisher ports.
type Publisher struct {
	mu       sync.Mutex
	ch       channel
	closeFn  func() error
	exchange string
	closed   bool
}

// Dial connects to the broker, opens a channel and declares the exchange.
func Dial(cfg Config) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("open channel: %w", err), conn.Close())
	}
	p, err := newPublisher(ch, conn.Close, cfg.Exchange)
	if err != nil {
		return nil, errors.Join(err, conn.Close())
	}
	return p, nil
}

func newPublisher(ch channel, closeFn func() error, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, closeFn: closeFn, exchange: exchange}, nil
}

// Publish sends e with its type as routing key.
func (p *Publisher) Publish(ctx context.Context, e event.Event) error {
	msg, err := buildMessage(e)
	if err != nil {
		return err
	}
	key := string(e.Type)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.ch.IsClosed() {
		metrics.EventsPublishedTotal.WithLabelValues(key, "error").Inc()
		return ErrClosed
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, key, false, false, msg); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(key, "error").Inc()
		return fmt.Errorf("publish %s: %w", key, err)
	}
	metrics.EventsPublishedTotal.WithLabelValues(key, "ok").Inc()
	logger.FromContext(ctx).Debug("event published",
		zap.String("exchange", p.exchange),
		zap.String("routing_key", key),
		zap.String("event_id", e.ID),
	)
	return nil
}

// Ping reports whether the channel is still open.
func (p *Publisher) Ping(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.ch.IsClosed() {
		return ErrClosed
	}
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	var errs []error
	if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		errs = append(errs, fmt.Errorf("close channel: %w", err))
	}
	if p.closeFn != nil {
		if err := p.closeFn(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

func buildMessage(e event.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event %s: %w", e.ID, err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID,
		Timestamp:    e.OccurredAt,
		Type:         string(e.Type),
		Body:         body,
	}, nil
}
