package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

const (
	routingKeyCreated       = "reservation.created"
	routingKeyStatusChanged = "reservation.status_changed"
)

// AMQPNotifier publishes reservation events to a topic exchange.
type AMQPNotifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial failed: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel failed: %w", err)
	}

	if err := channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("amqp exchange declare failed: %w", err)
	}

	return &AMQPNotifier{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

func (n *AMQPNotifier) ReservationCreated(ctx context.Context, event ReservationEvent) error {
	return n.publish(routingKeyCreated, event)
}

func (n *AMQPNotifier) ReservationStatusChanged(ctx context.Context, event ReservationEvent) error {
	return n.publish(routingKeyStatusChanged, event)
}

func (n *AMQPNotifier) publish(routingKey string, event ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event failed: %w", err)
	}

	if err := n.channel.Publish(
		n.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
		},
	); err != nil {
		return fmt.Errorf("publish %s failed: %w", routingKey, err)
	}
	return nil
}

func (n *AMQPNotifier) Close() error {
	if err := n.channel.Close(); err != nil {
		n.conn.Close()
		return fmt.Errorf("close amqp channel failed: %w", err)
	}
	return n.conn.Close()
}
