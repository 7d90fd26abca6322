package entity

import (
	"strings"
	"time"
)

// Priority is the urgency level of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Weight orders priorities: high=3, medium=2, low=1, unknown=0
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (p Priority) IsValid() bool {
	return p.Weight() > 0
}

// ParsePriority normalizes case and surrounding spaces
func ParsePriority(value string) Priority {
	return Priority(strings.ToLower(strings.TrimSpace(value)))
}

type Task struct {
	ID                int64              `json:"id" gorm:"primaryKey;autoIncrement"`
	Title             string             `json:"title" gorm:"type:varchar(255);not null"`
	Description       string             `json:"description" gorm:"type:text;not null;default:''"`
	Priority          Priority           `json:"priority" gorm:"type:varchar(10);not null;default:medium"`
	Deadline          *time.Time         `json:"deadline"`
	ProjectID         int64              `json:"projectId" gorm:"index"`
	Completed         bool               `json:"completed" gorm:"not null;default:false"`
	CreatedAt         time.Time          `json:"createdAt" gorm:"not null"`
	CompletedAt       *time.Time         `json:"completedAt"`
	IsRecurring       bool               `json:"isRecurring" gorm:"not null;default:false"`
	RecurringID       string             `json:"recurringId,omitempty" gorm:"type:varchar(36);index"`
	RecurrencePattern *RecurrencePattern `json:"recurrencePattern,omitempty" gorm:"type:text"`
	Subtasks          []Subtask          `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}

// HasDeadline reports whether a deadline is set
func (t Task) HasDeadline() bool {
	return t.Deadline != nil && !t.Deadline.IsZero()
}
