package db

import (
	"context"

	"go-taskflow/internal/domain/entity"
)

type ProjectGateway interface {
	FindAll(ctx context.Context) ([]entity.Project, error)
	FindByID(ctx context.Context, id int64) (*entity.Project, error)

	Create(ctx context.Context, project entity.Project) (*entity.Project, error)
	Update(ctx context.Context, project entity.Project) (*entity.Project, error)
	Delete(ctx context.Context, id int64) error
}
