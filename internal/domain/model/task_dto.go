package model

import (
	"time"

	"go-taskflow/internal/domain/entity"
)

type CreateTaskDTO struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	ProjectID   int64      `json:"projectId"`
}

// UpdateTaskDTO only applies the fields that are present
type UpdateTaskDTO struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Priority      *string    `json:"priority"`
	Deadline      *time.Time `json:"deadline"`
	ClearDeadline bool       `json:"clearDeadline"`
	ProjectID     *int64     `json:"projectId"`
	Completed     *bool      `json:"completed"`
}

type BulkTaskDTO struct {
	TaskIDs []int64 `json:"taskIds"`
}

type BulkMoveTaskDTO struct {
	TaskIDs   []int64 `json:"taskIds"`
	ProjectID int64   `json:"projectId"`
}

type BulkResultDTO struct {
	Tasks        []entity.Task `json:"tasks,omitempty"`
	DeletedCount int64         `json:"deletedCount"`
}

// TaskQuery holds the list filters, sort and paging parameters
type TaskQuery struct {
	Status    string   `json:"status"`
	Priority  string   `json:"priority"`
	ProjectID int64    `json:"projectId"`
	Search    string   `json:"q"`
	Fields    []string `json:"fields"`
	Fuzzy     bool     `json:"fuzzy"`
	Threshold float64  `json:"threshold"`
	Sort      string   `json:"sort"`
	Page      int      `json:"page"`
	Size      int      `json:"size"`
}

// TaskHighlight holds the matched rune ranges of a task's text fields
type TaskHighlight struct {
	TaskID      int64    `json:"taskId"`
	Title       [][2]int `json:"title"`
	Description [][2]int `json:"description"`
}
