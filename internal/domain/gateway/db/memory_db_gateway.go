package db

import "go-taskflow/internal/domain/model"

// MemoryHealthDBGateway reports the in-memory store, which is always reachable
type MemoryHealthDBGateway struct{}

var _ HealthDBGateway = MemoryHealthDBGateway{}

func (MemoryHealthDBGateway) Health() model.ComponentHealthStatus {
	return upStatus("memory")
}
