package model

import "go-taskflow/internal/domain/entity"

type CreateProjectDTO struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type UpdateProjectDTO struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// ProjectTasks groups a project with its tasks
type ProjectTasks struct {
	entity.Project
	Tasks []entity.Task `json:"tasks"`
}
