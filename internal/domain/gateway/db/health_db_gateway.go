package db

import "go-taskflow/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}

func downStatus(driver string, err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"driver":  driver,
			"message": err.Error(),
		},
	}
}

func upStatus(driver string) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":  driver,
			"message": string(model.StatusUp),
		},
	}
}
