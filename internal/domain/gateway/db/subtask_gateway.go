package db

import (
	"context"

	"go-taskflow/internal/domain/entity"
)

type SubtaskGateway interface {
	FindAll(ctx context.Context) ([]entity.Subtask, error)
	FindByID(ctx context.Context, id int64) (*entity.Subtask, error)
	FindByIDs(ctx context.Context, ids []int64) ([]entity.Subtask, error)
	FindByTaskID(ctx context.Context, taskID int64) ([]entity.Subtask, error)

	Create(ctx context.Context, subtask entity.Subtask) (*entity.Subtask, error)
	Update(ctx context.Context, subtask entity.Subtask) (*entity.Subtask, error)
	UpdateBatch(ctx context.Context, subtasks []entity.Subtask) ([]entity.Subtask, error)

	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
	DeleteByTaskID(ctx context.Context, taskID int64) (int64, error)
}
