package service

import (
	"context"
	"time"

	"legal-letter-be/internal/pkg/logger"
	"legal-letter-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// DomainEventsTopic is the in-process topic every service publishes to.
const DomainEventsTopic = "domain-events"

// IPublisherService emits domain events. Publishing is best effort: a failure
// is logged and never fails the calling operation.
type IPublisherService interface {
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

type publisherService struct {
	publisher message.Publisher
	topic     string
	logger    logger.ILogger
}

func NewPublisherService(publisher message.Publisher, topic string, log logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		topic:     topic,
		logger:    log,
	}
}

func (s *publisherService) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}

	payload, err := events.Encode(events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("EVENTS", "Failed to encode event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := s.publisher.Publish(s.topic, msg); err != nil {
		s.logger.Error("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
