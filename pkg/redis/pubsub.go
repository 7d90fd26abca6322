package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"go-taskflow/pkg/log"
)

// MessageHandler defines an interface that processes Redis pub/sub messages
type MessageHandler interface {
	HandleMessage(ctx context.Context, channel string, message string) error
}

// HandlerFunc defines a function that handles Redis pub/sub messages
type HandlerFunc func(ctx context.Context, channel string, message string) error

var _ MessageHandler = HandlerFunc(nil)

// HandleMessage implements the MessageHandler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, channel string, message string) error {
	return f(ctx, channel, message)
}

// PubSubConfig defines the configuration options for Redis pub/sub
type PubSubConfig struct {
	// PoolSize is the number of concurrent message handlers
	PoolSize int
	// ReconnectDelay is the delay between reconnection attempts
	ReconnectDelay time.Duration
	// MaxReconnectAttempts is the maximum number of reconnection attempts
	MaxReconnectAttempts int
}

// DefaultPubSubConfig returns a single worker configuration
func DefaultPubSubConfig() *PubSubConfig {
	return &PubSubConfig{
		PoolSize:             1,
		ReconnectDelay:       time.Second,
		MaxReconnectAttempts: 10,
	}
}

// Publisher handles Redis publishing operations
type Publisher struct {
	client *Client
}

// NewPublisher creates a new publisher
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// Channel returns the namespaced channel name
func (p *Publisher) Channel(channel string) string {
	return p.client.Key(channel)
}

// Publish publishes a raw message to a channel
func (p *Publisher) Publish(ctx context.Context, channel string, message any) error {
	return p.client.Publish(ctx, p.Channel(channel), message)
}

// PublishJSON publishes a JSON message to a channel
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message any) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.Publish(ctx, channel, data)
}

// Subscriber receives messages from Redis channels and dispatches them to a handler
type Subscriber struct {
	client            *Client
	handler           MessageHandler
	config            *PubSubConfig
	channels          []string
	messagesProcessed int64
	isRunning         int32
	mu                sync.Mutex
	sub               *redis.PubSub
}

// NewSubscriber creates and returns a new Subscriber
func NewSubscriber(client *Client, handler MessageHandler, config *PubSubConfig) (*Subscriber, error) {
	if config == nil {
		config = DefaultPubSubConfig()
	}
	if config.PoolSize < 1 {
		return nil, fmt.Errorf("pool size must be greater than 0")
	}
	return &Subscriber{client: client, handler: handler, config: config}, nil
}

// Subscribe subscribes to one or more channels, replacing any previous subscription
func (s *Subscriber) Subscribe(ctx context.Context, channels ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.channels = make([]string, len(channels))
	for i, channel := range channels {
		s.channels[i] = s.client.Key(channel)
	}

	if s.sub != nil {
		_ = s.sub.Close()
	}
	s.sub = s.client.GetClient().Subscribe(ctx, s.channels...)

	// Receive blocks until the subscription is confirmed
	if _, err := s.sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %v: %w", s.channels, err)
	}
	return nil
}

// Start dispatches messages to PoolSize workers until ctx is canceled
func (s *Subscriber) Start(ctx context.Context) {
	s.mu.Lock()
	sub := s.sub
	s.mu.Unlock()
	if sub == nil {
		log.Error("Subscriber is not subscribed to any channel")
		return
	}

	atomic.StoreInt32(&s.isRunning, 1)
	defer atomic.StoreInt32(&s.isRunning, 0)

	messages := make(chan *redis.Message)
	var wg sync.WaitGroup
	for i := 0; i < s.config.PoolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for msg := range messages {
				s.handleMessage(ctx, msg)
			}
		}()
	}

	s.receive(ctx, messages)
	close(messages)
	wg.Wait()
}

func (s *Subscriber) receive(ctx context.Context, messages chan<- *redis.Message) {
	attempts := 0
	for {
		s.mu.Lock()
		ch := s.sub.Channel()
		s.mu.Unlock()

	loop:
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					break loop
				}
				attempts = 0
				messages <- msg
			}
		}

		if attempts >= s.config.MaxReconnectAttempts {
			log.Errorf("Subscriber reached %d reconnect attempts, stopping", attempts)
			return
		}
		attempts++
		log.Warnf("Subscriber channel closed, reconnecting (attempt %d/%d)", attempts, s.config.MaxReconnectAttempts)

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.config.ReconnectDelay):
		}

		s.mu.Lock()
		s.sub = s.client.GetClient().Subscribe(ctx, s.channels...)
		s.mu.Unlock()
	}
}

func (s *Subscriber) handleMessage(ctx context.Context, msg *redis.Message) {
	if err := s.handler.HandleMessage(ctx, msg.Channel, msg.Payload); err != nil {
		log.Errorf("Error processing message from channel %s: %v", msg.Channel, err)
		return
	}
	atomic.AddInt64(&s.messagesProcessed, 1)
	log.Debugf("Processed message from channel %s", msg.Channel)
}

// IsRunning reports whether Start is dispatching messages
func (s *Subscriber) IsRunning() bool {
	return atomic.LoadInt32(&s.isRunning) == 1
}

// MessagesProcessed returns how many messages were handled without error
func (s *Subscriber) MessagesProcessed() int64 {
	return atomic.LoadInt64(&s.messagesProcessed)
}

// Close closes the subscription
func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub != nil {
		return s.sub.Close()
	}
	return nil
}
