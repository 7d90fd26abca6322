package dashboard

import (
	"context"
	"time"

	"go-taskflow/internal/domain/model"
)

type UseCase interface {
	Overview(ctx context.Context) (*model.DashboardOverview, error)
	Stats(ctx context.Context) (*model.TaskStats, error)
	Calendar(ctx context.Context, year int, month time.Month) (*model.CalendarMonth, error)
	// Invalidate drops the cached read models; it is registered as an event handler
	Invalidate(ctx context.Context, event model.TaskEvent) error
}
