package service

import (
	"context"
	"encoding/json"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/logger"
	"notekeep-be/pkg/events"
	pkgnats "notekeep-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	// PublishChange fans a mutation out to the in-process topic and,
	// when configured, relays it to NATS. Best effort: failures are
	// logged, never returned to the request path.
	PublishChange(ctx context.Context, entity, action string, id int)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
	natsPub   *pkgnats.Publisher
	logger    logger.ILogger
}

func NewPublisherService(
	topicName string,
	pubSub *gochannel.GoChannel,
	natsPub *pkgnats.Publisher,
	log logger.ILogger,
) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		natsPub:   natsPub,
		logger:    log,
	}
}

func (p *publisherService) PublishChange(ctx context.Context, entity, action string, id int) {
	event := dto.ChangeEvent{Entity: entity, Action: action, Id: id}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Publisher", "failed to marshal change event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		p.logger.Warn("Publisher", "failed to publish change event", map[string]interface{}{
			"error": err.Error(), "entity": entity, "action": action, "id": id,
		})
	}

	if p.natsPub != nil {
		if err := p.natsPub.Publish(ctx, events.NewChange(entity, action, id)); err != nil {
			p.logger.Warn("Publisher", "failed to relay change event to NATS", map[string]interface{}{
				"error": err.Error(), "entity": entity, "action": action, "id": id,
			})
		}
	}
}
