package services

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/grabpoint/api/app/events"
)

// AMQPNotifier publishes status-changed events to a durable queue. Delivery
// to the user is fire-and-forget: the consumer acks even when the email
// cannot be sent.
type AMQPNotifier struct {
	channel *amqp.Channel
	queue   string
}

func NewAMQPNotifier(conn *amqp.Connection, queue string) (*AMQPNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}

	return &AMQPNotifier{channel: ch, queue: queue}, nil
}

func (n *AMQPNotifier) StatusChanged(ctx context.Context, ev events.StatusChanged) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return n.channel.PublishWithContext(ctx,
		"",      // default exchange
		n.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (n *AMQPNotifier) Close() error {
	return n.channel.Close()
}

// StatusConsumer drains the notification queue and mails the order owner.
type StatusConsumer struct {
	conn   *amqp.Connection
	queue  string
	mailer *Mailer
}

func NewStatusConsumer(conn *amqp.Connection, queue string, mailer *Mailer) *StatusConsumer {
	return &StatusConsumer{
		conn:   conn,
		queue:  queue,
		mailer: mailer,
	}
}

// Start consumes until ctx is cancelled or the channel closes. Malformed
// messages and failed sends are logged and acked; a status change must never
// be blocked or replayed because its email failed.
func (c *StatusConsumer) Start(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	deliveries, err := ch.Consume(
		c.queue,
		"status-notifier",
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.handle(d)
		}
	}
}

func (c *StatusConsumer) handle(d amqp.Delivery) {
	defer func() {
		if err := d.Ack(false); err != nil {
			log.Error().Err(err).Msg("failed to ack notification message")
		}
	}()

	var ev events.StatusChanged
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		log.Error().Err(err).Msg("discarding malformed notification message")
		return
	}

	subject := fmt.Sprintf("Your order is now %s", ev.NewStatus)
	if ev.Kind == events.KindPrintOrder {
		subject = fmt.Sprintf("Your print order is now %s", ev.NewStatus)
	}

	if err := c.mailer.SendHTMLEmail(ev.Recipient, subject, BuildStatusEmailBody(ev)); err != nil {
		log.Error().Err(err).
			Str("order_id", ev.OrderID).
			Str("recipient", ev.Recipient).
			Msg("failed to send status notification email")
	}
}

// LogNotifier stands in when no broker is configured (local development,
// tests). Events are logged and dropped.
type LogNotifier struct{}

func (LogNotifier) StatusChanged(_ context.Context, ev events.StatusChanged) error {
	log.Info().
		Str("kind", ev.Kind).
		Str("order_id", ev.OrderID).
		Str("old_status", ev.OldStatus).
		Str("new_status", ev.NewStatus).
		Msg("status changed (no broker configured, notification dropped)")
	return nil
}
