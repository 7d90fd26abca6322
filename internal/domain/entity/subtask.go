package entity

import "time"

type Subtask struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"type:varchar(255);not null"`
	Description string     `json:"description" gorm:"type:text;not null;default:''"`
	TaskID      int64      `json:"taskId" gorm:"index;not null"`
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	Deadline    *time.Time `json:"deadline"`
}

func (Subtask) TableName() string {
	return "subtasks"
}
