package model

import "time"

// EventType names a change published to other instances
type EventType string

const (
	EventTaskCreated    EventType = "task.created"
	EventTaskUpdated    EventType = "task.updated"
	EventTaskDeleted    EventType = "task.deleted"
	EventProjectChanged EventType = "project.changed"
	EventSubtaskChanged EventType = "subtask.changed"
	EventSeriesChanged  EventType = "series.changed"
)

type TaskEvent struct {
	Type       EventType `json:"type"`
	EntityIDs  []int64   `json:"entityIds,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
