package subtask

import (
	"context"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context) ([]entity.Subtask, error)
	FindByTaskID(ctx context.Context, taskID int64) ([]entity.Subtask, error)
	FindByID(ctx context.Context, id int64) (*entity.Subtask, error)
	Create(ctx context.Context, dto model.CreateSubtaskDTO) (*entity.Subtask, error)
	Update(ctx context.Context, id int64, dto model.UpdateSubtaskDTO) (*entity.Subtask, error)
	Delete(ctx context.Context, id int64) error
	BulkComplete(ctx context.Context, ids []int64) ([]entity.Subtask, error)
	BulkDelete(ctx context.Context, ids []int64) (int64, error)
}
