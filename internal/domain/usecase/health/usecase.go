package health

import "go-taskflow/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}

// ComponentHealth is implemented by every gateway the health check aggregates
type ComponentHealth interface {
	Health() model.ComponentHealthStatus
}
