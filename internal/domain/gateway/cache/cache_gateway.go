package cache

import (
	"context"

	"go-taskflow/internal/domain/model"
)

// Gateway stores computed read models, such as the dashboard, between writes
type Gateway interface {
	// Get decodes the entry into dest and reports whether it was present
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	// Clear drops every entry of the cache
	Clear(ctx context.Context) error
}

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
