// Package pubsub distributes domain events over Redis Pub/Sub so other
// instances and sidecar consumers (notification relays, audit trails) can
// react without polling the database.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"propdesk/internal/domain/shared/events"
	"propdesk/internal/shared/logger"
)

const (
	domainEventChannelPrefix = "propdesk:events:"
	publishTimeout           = 5 * time.Second
)

// RedisEventPublisher implements events.EventPublisher on top of Redis
// Pub/Sub. Each event goes to a channel named after its event type, e.g.
// "propdesk:events:ticket.submitted".
type RedisEventPublisher struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisEventPublisher(client *redis.Client, log logger.Interface) *RedisEventPublisher {
	return &RedisEventPublisher{
		client: client,
		logger: log,
	}
}

func (p *RedisEventPublisher) Publish(event events.DomainEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.GetEventType(), err)
	}

	channel := domainEventChannelPrefix + event.GetEventType()
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
	}

	p.logger.Debugw("domain event published",
		"event_type", event.GetEventType(),
		"aggregate_id", event.GetAggregateID(),
	)
	return nil
}

func (p *RedisEventPublisher) PublishAll(evts []events.DomainEvent) error {
	for _, event := range evts {
		if err := p.Publish(event); err != nil {
			return err
		}
	}
	return nil
}
