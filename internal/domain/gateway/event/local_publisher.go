package event

import (
	"context"
	"errors"
	"sync"

	"go-taskflow/internal/domain/model"
)

// LocalPublisher delivers events synchronously to in-process handlers.
// It is used when redis is disabled, so a single instance still invalidates its own caches.
type LocalPublisher struct {
	mu       sync.RWMutex
	handlers []Handler
}

var _ Publisher = (*LocalPublisher)(nil)

func NewLocalPublisher(handlers ...Handler) *LocalPublisher {
	return &LocalPublisher{handlers: handlers}
}

// Subscribe registers another handler
func (publisher *LocalPublisher) Subscribe(handler Handler) {
	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	publisher.handlers = append(publisher.handlers, handler)
}

func (publisher *LocalPublisher) Publish(ctx context.Context, event model.TaskEvent) error {
	publisher.mu.RLock()
	handlers := append([]Handler(nil), publisher.handlers...)
	publisher.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
