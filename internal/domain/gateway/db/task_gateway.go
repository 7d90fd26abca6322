package db

import (
	"context"

	"go-taskflow/internal/domain/entity"
)

// TaskGateway is the record store of tasks. Lookups of a missing id return nil, nil.
type TaskGateway interface {
	FindAll(ctx context.Context) ([]entity.Task, error)
	FindByID(ctx context.Context, id int64) (*entity.Task, error)
	FindByIDs(ctx context.Context, ids []int64) ([]entity.Task, error)
	FindByProjectID(ctx context.Context, projectID int64) ([]entity.Task, error)
	FindByRecurringID(ctx context.Context, recurringID string) ([]entity.Task, error)

	Create(ctx context.Context, task entity.Task) (*entity.Task, error)
	CreateBatch(ctx context.Context, tasks []entity.Task) ([]entity.Task, error)
	Update(ctx context.Context, task entity.Task) (*entity.Task, error)
	UpdateBatch(ctx context.Context, tasks []entity.Task) ([]entity.Task, error)

	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
}
