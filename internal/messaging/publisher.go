package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"pizzeria-orders/internal/logger"
	"pizzeria-orders/internal/models"
)

// OrderEvent is the message emitted after an order lifecycle operation commits.
type OrderEvent struct {
	Event       string             `json:"event"`
	OrderID     string             `json:"order_id"`
	ServiceType models.ServiceType `json:"service_type"`
	Status      models.OrderStatus `json:"status"`
	Total       string             `json:"total"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// Publisher publishes order lifecycle events to RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

// NewPublisher creates a new order event publisher.
func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: log,
	}
}

// PublishOrderEvent publishes event to the order_events topic exchange
// with routing key order.<service_type>.<event>.
func (p *Publisher) PublishOrderEvent(ctx context.Context, event OrderEvent) error {
	routingKey := fmt.Sprintf("order.%s.%s", event.ServiceType, event.Event)

	if p.conn.IsClosed() {
		if err := p.conn.Reconnect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: 2, // persistent
		Timestamp:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.conn.Channel().PublishWithContext(
		ctx,
		"order_events", // exchange
		routingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		publishing,
	)
	if err != nil {
		p.logger.Error("event_publish_failed",
			fmt.Sprintf("Failed to publish %s event", event.Event),
			"", err, map[string]interface{}{
				"order_id":    event.OrderID,
				"routing_key": routingKey,
			})
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("event_published",
		fmt.Sprintf("Published %s event", event.Event),
		"", map[string]interface{}{
			"order_id":    event.OrderID,
			"routing_key": routingKey,
		})

	return nil
}

// Close closes the publisher's connection.
func (p *Publisher) Close() error {
	return p.conn.Close()
}
