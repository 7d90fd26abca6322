package project

import (
	"context"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context) ([]entity.Project, error)
	FindAllWithTasks(ctx context.Context) ([]model.ProjectTasks, error)
	FindByID(ctx context.Context, id int64) (*entity.Project, error)
	FindTasks(ctx context.Context, id int64) ([]entity.Task, error)
	Create(ctx context.Context, dto model.CreateProjectDTO) (*entity.Project, error)
	Update(ctx context.Context, id int64, dto model.UpdateProjectDTO) (*entity.Project, error)
	Delete(ctx context.Context, id int64) error
}
