package service

import (
	"context"
	"encoding/json"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/logger"
	"notekeep-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the change topic and hands events to the
// websocket hub.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		logger:    log,
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
	var event dto.ChangeEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("Consumer", "failed to unmarshal change event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.hub.Broadcast(event)
	msg.Ack()
}
