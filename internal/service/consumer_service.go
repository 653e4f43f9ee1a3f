package service

import (
	"context"
	"encoding/json"

	"smartnotes-be/internal/pkg/logger"
	"smartnotes-be/internal/pkg/mailer"
	"smartnotes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var envelope events.Envelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		// Ack invalid messages to prevent infinite redelivery
		msg.Ack()
		return
	}

	switch envelope.Type {
	case events.UserRegistered:
		email, _ := envelope.Data["email"].(string)
		if email != "" {
			if err := cs.emailService.SendWelcome(email); err != nil {
				cs.log.Error("consumer", "Failed to send welcome email", map[string]interface{}{
					"email": email,
					"error": err.Error(),
				})
			} else {
				cs.log.Info("consumer", "Welcome email processed", map[string]interface{}{"email": email})
			}
		}
	default:
		cs.log.Warn("consumer", "Unknown event type", map[string]interface{}{"type": envelope.Type})
	}

	msg.Ack()
}
