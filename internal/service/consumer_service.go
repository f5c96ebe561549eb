// FILE: internal/service/consumer_service.go
package service

import (
	"context"

	"legal-letter-be/internal/pkg/logger"
	"legal-letter-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventSink receives every domain event after it left the in-process bus.
// The NATS publisher is the production sink.
type EventSink interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	sink       EventSink
	logger     logger.ILogger
}

// NewConsumerService relays domain events to sink. sink may be nil, in which
// case events are only logged.
func NewConsumerService(subscriber message.Subscriber, topicName string, sink EventSink, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		sink:       sink,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Malformed and undeliverable events are acked; the bus is not a durable queue.
	defer msg.Ack()

	event, err := events.Decode(msg.Payload)
	if err != nil {
		cs.logger.Error("EVENTS", "Failed to decode event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	cs.logger.Info("EVENTS", event.Type, event.Data)

	if cs.sink == nil {
		return
	}
	if err := cs.sink.Publish(ctx, event); err != nil {
		cs.logger.Warn("EVENTS", "Failed to forward event", map[string]interface{}{
			"type":  event.Type,
			"error": err.Error(),
		})
	}
}
