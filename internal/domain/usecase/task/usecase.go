package task

import (
	"context"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context, query model.TaskQuery) (*model.Page[entity.Task], error)
	FindByID(ctx context.Context, id int64) (*entity.Task, error)
	Create(ctx context.Context, dto model.CreateTaskDTO) (*entity.Task, error)
	Update(ctx context.Context, id int64, dto model.UpdateTaskDTO) (*entity.Task, error)
	ToggleComplete(ctx context.Context, id int64) (*entity.Task, error)
	Delete(ctx context.Context, id int64) error
	BulkComplete(ctx context.Context, ids []int64) (*model.BulkResultDTO, error)
	BulkDelete(ctx context.Context, ids []int64) (*model.BulkResultDTO, error)
	BulkMove(ctx context.Context, ids []int64, projectID int64) (*model.BulkResultDTO, error)
	Highlight(ctx context.Context, id int64, term string) (*model.TaskHighlight, error)
}
