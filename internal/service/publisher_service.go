package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"smartnotes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, evt events.Event) error
	PublishUserRegistered(ctx context.Context, email string)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) Publish(ctx context.Context, evt events.Event) error {
	payload, err := json.Marshal(events.Envelope{
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.pubSub.Publish(s.topicName, msg)
}

// PublishUserRegistered is fire-and-forget: the event feeds the welcome
// mail worker and must never fail the registration request.
func (s *publisherService) PublishUserRegistered(ctx context.Context, email string) {
	evt := events.BaseEvent{
		Type: events.UserRegistered,
		Data: map[string]interface{}{
			"email": email,
		},
		OccurredAt: time.Now(),
	}
	if err := s.Publish(ctx, evt); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", events.UserRegistered, err)
	}
}
