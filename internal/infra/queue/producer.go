package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Workflow event types routed by the dispatcher.
const (
	EventNewMember       = "new_member"
	EventVisitorFollowup = "visitor_followup"
	EventBirthday        = "birthday"
	EventEventReminder   = "event_reminder"
)

// WorkflowEvent is the fire-and-forget side-effect handoff. The lifecycle
// engine publishes it; the worker consumes it and dispatches the message.
type WorkflowEvent struct {
	Type      string            `json:"type"`
	ContactID string            `json:"contact_id"`
	Context   map[string]string `json:"context,omitempty"`
	EmittedAt time.Time         `json:"emitted_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishWorkflowEvent(ctx context.Context, evt WorkflowEvent) error {
	if evt.EmittedAt.IsZero() {
		evt.EmittedAt = time.Now()
	}

	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal workflow event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish workflow event: %w", err)
	}

	return nil
}
