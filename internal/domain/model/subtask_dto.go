package model

import "time"

type CreateSubtaskDTO struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	TaskID      int64      `json:"taskId"`
	Deadline    *time.Time `json:"deadline"`
}

type UpdateSubtaskDTO struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Deadline    *time.Time `json:"deadline"`
}

type BulkSubtaskDTO struct {
	SubtaskIDs []int64 `json:"subtaskIds"`
}
