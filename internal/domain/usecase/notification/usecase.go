package notification

import (
	"context"

	"go-taskflow/internal/domain/model"
)

type UseCase interface {
	// SendOverdueDigest posts the overdue tasks to the webhook. It returns nil, nil when
	// nothing was sent.
	SendOverdueDigest(ctx context.Context) (*model.OverdueDigest, error)
}
