package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventDispatcher routes a consumed workflow event to its handler. The
// returned error is only used to decide ack vs. dead-letter; dispatch
// failures never reach the transition that triggered the event.
type EventDispatcher interface {
	Handle(ctx context.Context, evt WorkflowEvent) error
}

type Worker struct {
	Channel    *amqp.Channel
	Dispatcher EventDispatcher
}

func NewWorker(ch *amqp.Channel, dispatcher EventDispatcher) *Worker {
	return &Worker{
		Channel:    ch,
		Dispatcher: dispatcher,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("worker: failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var evt WorkflowEvent
			if err := json.Unmarshal(d.Body, &evt); err != nil {
				log.Printf("worker: invalid JSON: %s", err)
				// Malformed message. Reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			log.Printf("worker: processing %s event for contact %s", evt.Type, evt.ContactID)

			if err := w.Dispatcher.Handle(context.Background(), evt); err != nil {
				log.Printf("worker: dispatch failed: %s", err)
				// Send to the DLQ; delivery failures must not block the queue.
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf("worker: consuming queue '%s'", queueName)
	<-forever
}
