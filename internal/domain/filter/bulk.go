package filter

import (
	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

// ValidateBulk resolves ids against tasks. It fails when nothing is selected or
// when the ids do not name len(ids) distinct tasks, so a repeated id counts as not found.
func ValidateBulk(ids []int64, tasks []entity.Task) ([]entity.Task, error) {
	if len(ids) == 0 {
		return nil, model.Invalid("task.bulk.no-tasks")
	}

	byID := make(map[int64]entity.Task, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}

	seen := make(map[int64]struct{}, len(ids))
	selected := make([]entity.Task, 0, len(ids))
	for _, id := range ids {
		_, dup := seen[id]
		task, ok := byID[id]
		if dup || !ok {
			return nil, model.Invalid("task.bulk.not-found")
		}
		seen[id] = struct{}{}
		selected = append(selected, task)
	}
	return selected, nil
}

// ValidateBulkComplete checks a bulk completion request
func ValidateBulkComplete(ids []int64, tasks []entity.Task) ([]entity.Task, error) {
	return ValidateBulk(ids, tasks)
}

// ValidateBulkDelete checks a bulk deletion request
func ValidateBulkDelete(ids []int64, tasks []entity.Task) ([]entity.Task, error) {
	return ValidateBulk(ids, tasks)
}

// ValidateBulkMove also requires a target project
func ValidateBulkMove(ids []int64, tasks []entity.Task, targetProjectID int64) ([]entity.Task, error) {
	if len(ids) == 0 {
		return nil, model.Invalid("task.bulk.no-tasks")
	}
	if targetProjectID == 0 {
		return nil, model.Invalid("task.bulk.no-target")
	}
	return ValidateBulk(ids, tasks)
}
