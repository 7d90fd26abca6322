package model

import "go-taskflow/internal/domain/entity"

type CalendarDay struct {
	Date           string        `json:"date"`
	Day            int           `json:"day"`
	Tasks          []entity.Task `json:"tasks"`
	IsToday        bool          `json:"isToday"`
	IsOverdue      bool          `json:"isOverdue"`
	IsCurrentMonth bool          `json:"isCurrentMonth"`
	HasOverdue     bool          `json:"hasOverdue"`
	HasDueToday    bool          `json:"hasDueToday"`
}

// PrioritySummary counts pending tasks per priority
type PrioritySummary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type CalendarMonth struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Weeks   [][]CalendarDay `json:"weeks"`
	Pending PrioritySummary `json:"pending"`
}
