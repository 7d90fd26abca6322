package event

import (
	"context"
	"time"

	"go-taskflow/internal/domain/model"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/msg"
)

// Handler reacts to a published event
type Handler func(ctx context.Context, event model.TaskEvent) error

// Publisher announces task, project and subtask changes
type Publisher interface {
	Publish(ctx context.Context, event model.TaskEvent) error
}

// Channel is the pub/sub channel carrying model.TaskEvent messages
const Channel = "events::tasks"

// Emit publishes an event, logging failures instead of returning them
func Emit(ctx context.Context, publisher Publisher, eventType model.EventType, at time.Time, ids ...int64) {
	if publisher == nil {
		return
	}
	event := model.TaskEvent{Type: eventType, EntityIDs: ids, OccurredAt: at.UTC()}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn(msg.GetMessage("event.publish-failed", eventType, publishRetries+1, err))
	}
}
