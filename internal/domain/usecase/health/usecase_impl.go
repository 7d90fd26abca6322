package health

import (
	"go-taskflow/internal/domain/gateway/cache"
	"go-taskflow/internal/domain/gateway/db"
	"go-taskflow/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthGateway
	queueGateway ComponentHealth
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthGateway, queueGateway ComponentHealth) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

// CheckHealth is UP when the database is UP and the optional components are UP or disabled
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	cacheHealth := useCase.cacheGateway.Health()
	queueHealth := useCase.queueGateway.Health()

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || !optionalUp(cacheHealth) || !optionalUp(queueHealth) {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	}
}

func optionalUp(status model.ComponentHealthStatus) bool {
	return status.Status == model.StatusUp || status.Status == model.StatusUnknown
}
