package model

import (
	"time"

	"go-taskflow/internal/domain/entity"
)

// CreateSeriesDTO describes a recurring task; Deadline is the first occurrence
type CreateSeriesDTO struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Priority    string                   `json:"priority"`
	Deadline    *time.Time               `json:"deadline"`
	ProjectID   int64                    `json:"projectId"`
	Pattern     entity.RecurrencePattern `json:"pattern"`
}

type PreviewDTO struct {
	Pattern entity.RecurrencePattern `json:"pattern"`
	Start   time.Time                `json:"start"`
	Count   int                      `json:"count"`
}

type SeriesDTO struct {
	RecurringID string        `json:"recurringId"`
	Tasks       []entity.Task `json:"tasks"`
}

type StopSeriesDTO struct {
	RecurringID  string `json:"recurringId"`
	DeletedCount int64  `json:"deletedCount"`
}

// ExtendSeriesMessage is the queue payload asking a worker to extend one series
type ExtendSeriesMessage struct {
	RecurringID string `json:"recurringId"`
	RequestID   string `json:"requestId"`
}
