package recurrence

import (
	"context"
	"time"

	"go-taskflow/internal/domain/model"
)

type UseCase interface {
	CreateSeries(ctx context.Context, dto model.CreateSeriesDTO) (*model.SeriesDTO, error)
	Preview(dto model.PreviewDTO) ([]time.Time, error)
	ExtendSeries(ctx context.Context, recurringID string, requestID string) (*model.SeriesDTO, error)
	ExtendAll(ctx context.Context, requestID string) (int, error)
	StopSeries(ctx context.Context, recurringID string) (*model.StopSeriesDTO, error)
}
