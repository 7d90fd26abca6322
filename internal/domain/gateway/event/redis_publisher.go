package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-taskflow/internal/domain/model"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/redis"
)

const (
	publishRetries    = 3
	publishRetryDelay = 100 * time.Millisecond
)

// RedisPublisher broadcasts events to every instance through redis pub/sub
type RedisPublisher struct {
	publisher *redis.Publisher
}

var _ Publisher = (*RedisPublisher)(nil)

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{publisher: redis.NewPublisher(client)}
}

func (publisher *RedisPublisher) Publish(ctx context.Context, event model.TaskEvent) error {
	err := redis.RetryOperation(ctx, publishRetries, publishRetryDelay, func() error {
		return publisher.publisher.PublishJSON(ctx, Channel, event)
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

// RedisSubscriber decodes events from the pub/sub channel and hands them to a Handler
type RedisSubscriber struct {
	subscriber *redis.Subscriber
}

func NewRedisSubscriber(client *redis.Client, handler Handler) (*RedisSubscriber, error) {
	subscriber, err := redis.NewSubscriber(client, redis.HandlerFunc(decode(handler)), redis.DefaultPubSubConfig())
	if err != nil {
		return nil, err
	}
	return &RedisSubscriber{subscriber: subscriber}, nil
}

// Start subscribes to the event channel and blocks dispatching messages until ctx is done
func (subscriber *RedisSubscriber) Start(ctx context.Context) error {
	if err := subscriber.subscriber.Subscribe(ctx, Channel); err != nil {
		return err
	}
	log.Infof("Listening for task events on %s", Channel)
	subscriber.subscriber.Start(ctx)
	return nil
}

func (subscriber *RedisSubscriber) Close() error {
	return subscriber.subscriber.Close()
}

func decode(handler Handler) func(ctx context.Context, channel string, message string) error {
	return func(ctx context.Context, channel string, message string) error {
		var event model.TaskEvent
		if err := json.Unmarshal([]byte(message), &event); err != nil {
			return fmt.Errorf("invalid event on %s: %w", channel, err)
		}
		return handler(ctx, event)
	}
}
