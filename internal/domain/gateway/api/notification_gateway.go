package api

import (
	"context"

	"go-taskflow/internal/domain/model"
)

// NotificationGateway delivers notifications to an external receiver
type NotificationGateway interface {
	// SendOverdueDigest posts the digest of overdue tasks
	SendOverdueDigest(ctx context.Context, digest model.OverdueDigest) error
}
