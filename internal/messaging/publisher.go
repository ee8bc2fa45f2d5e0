package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// OrderPlacedRoutingKey is the routing key used for newly placed orders
const OrderPlacedRoutingKey = "order.placed"

// publishTimeout bounds a single publish call
const publishTimeout = 10 * time.Second

// OrderPlacedEvent is published once an order has been stored
type OrderPlacedEvent struct {
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	ItemCount    int       `json:"item_count"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	PlacedAt     time.Time `json:"placed_at"`
}

// OrderPublisher announces order events to interested consumers
type OrderPublisher interface {
	// PublishOrderPlaced publishes the event for a stored order
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
	// Close releases the broker connection
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) PublishOrderPlaced(context.Context, OrderPlacedEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }

// RabbitPublisher publishes order events to a RabbitMQ topic exchange
type RabbitPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewRabbitPublisher dials the broker and declares the durable topic exchange
func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	log.WithField("exchange", exchange).Info("Order events publisher connected")
	return &RabbitPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// PublishOrderPlaced publishes the event as a persistent JSON message
func (p *RabbitPublisher) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	if p.conn.IsClosed() {
		return fmt.Errorf("RabbitMQ connection is closed")
	}

	publishing, err := newPublishing(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,            // exchange
		OrderPlacedRoutingKey, // routing key
		false,                 // mandatory
		false,                 // immediate
		publishing,
	)
	if err != nil {
		return fmt.Errorf("failed to publish order %s: %w", event.OrderID, err)
	}

	log.WithFields(logrus.Fields{
		"exchange":    p.exchange,
		"routing_key": OrderPlacedRoutingKey,
		"order_id":    event.OrderID,
	}).Debug("Order event published")
	return nil
}

func (p *RabbitPublisher) Close() error {
	if err := p.channel.Close(); err != nil && !p.conn.IsClosed() {
		return err
	}
	return p.conn.Close()
}

func newPublishing(event OrderPlacedEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal order event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.OrderID,
		Timestamp:    event.PlacedAt,
		Type:         OrderPlacedRoutingKey,
		Body:         body,
	}, nil
}
