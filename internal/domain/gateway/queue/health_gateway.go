package queue

import (
	"go-taskflow/internal/domain/model"
	"go-taskflow/pkg/sqs"
)

// WorkerHealth is what the health gateway needs from a queue worker
type WorkerHealth interface {
	HealthCheck() sqs.WorkerHealthCheck
}

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker WorkerHealth)
	UnregisterWorker(name string)
}
