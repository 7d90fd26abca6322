package model

import (
	"time"

	"go-taskflow/internal/domain/entity"
)

type DashboardOverview struct {
	GeneratedAt  time.Time         `json:"generatedAt"`
	Stats        TaskStats         `json:"stats"`
	Projects     []ProjectProgress `json:"projects"`
	TodayTasks   []entity.Task     `json:"todayTasks"`
	OverdueTasks []entity.Task     `json:"overdueTasks"`
	Upcoming     []entity.Task     `json:"upcoming"`
}
