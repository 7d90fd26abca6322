package db

import (
	"context"
	"slices"

	"go-taskflow/internal/domain/entity"
)

// MemoryTaskGateway keeps tasks in process memory. Records are copied on the way in and out.
type MemoryTaskGateway struct {
	store *memoryStore[entity.Task]
}

var _ TaskGateway = (*MemoryTaskGateway)(nil)

func NewMemoryTaskGateway() *MemoryTaskGateway {
	return &MemoryTaskGateway{store: newMemoryStore(
		func(t entity.Task) int64 { return t.ID },
		func(t entity.Task, id int64) entity.Task { t.ID = id; return t },
	)}
}

func (gateway *MemoryTaskGateway) FindAll(_ context.Context) ([]entity.Task, error) {
	return cloneTasks(gateway.store.list(nil)), nil
}

func (gateway *MemoryTaskGateway) FindByID(_ context.Context, id int64) (*entity.Task, error) {
	task, ok := gateway.store.get(id)
	if !ok {
		return nil, nil
	}
	task = cloneTask(task)
	return &task, nil
}

func (gateway *MemoryTaskGateway) FindByIDs(_ context.Context, ids []int64) ([]entity.Task, error) {
	set := idSet(ids)
	return cloneTasks(gateway.store.list(func(t entity.Task) bool {
		_, ok := set[t.ID]
		return ok
	})), nil
}

func (gateway *MemoryTaskGateway) FindByProjectID(_ context.Context, projectID int64) ([]entity.Task, error) {
	return cloneTasks(gateway.store.list(func(t entity.Task) bool {
		return t.ProjectID == projectID
	})), nil
}

func (gateway *MemoryTaskGateway) FindByRecurringID(_ context.Context, recurringID string) ([]entity.Task, error) {
	tasks := cloneTasks(gateway.store.list(func(t entity.Task) bool {
		return t.RecurringID == recurringID
	}))
	slices.SortStableFunc(tasks, func(a, b entity.Task) int {
		switch {
		case a.Deadline == nil && b.Deadline == nil:
			return 0
		case a.Deadline == nil:
			return -1
		case b.Deadline == nil:
			return 1
		default:
			return a.Deadline.Compare(*b.Deadline)
		}
	})
	return tasks, nil
}

func (gateway *MemoryTaskGateway) Create(_ context.Context, task entity.Task) (*entity.Task, error) {
	created := gateway.store.insert(cloneTask(task))[0]
	created = cloneTask(created)
	return &created, nil
}

func (gateway *MemoryTaskGateway) CreateBatch(_ context.Context, tasks []entity.Task) ([]entity.Task, error) {
	return cloneTasks(gateway.store.insert(cloneTasks(tasks)...)), nil
}

func (gateway *MemoryTaskGateway) Update(_ context.Context, task entity.Task) (*entity.Task, error) {
	replaced := gateway.store.replace(cloneTask(task))
	if len(replaced) == 0 {
		return nil, nil
	}
	updated := cloneTask(replaced[0])
	return &updated, nil
}

func (gateway *MemoryTaskGateway) UpdateBatch(_ context.Context, tasks []entity.Task) ([]entity.Task, error) {
	return cloneTasks(gateway.store.replace(cloneTasks(tasks)...)), nil
}

func (gateway *MemoryTaskGateway) Delete(_ context.Context, id int64) error {
	gateway.store.remove(id)
	return nil
}

func (gateway *MemoryTaskGateway) DeleteBatch(_ context.Context, ids []int64) (int64, error) {
	return gateway.store.remove(ids...), nil
}

// cloneTask copies the pointer fields so callers never share state with the store
func cloneTask(task entity.Task) entity.Task {
	if task.Deadline != nil {
		deadline := *task.Deadline
		task.Deadline = &deadline
	}
	if task.CompletedAt != nil {
		completedAt := *task.CompletedAt
		task.CompletedAt = &completedAt
	}
	if task.RecurrencePattern != nil {
		pattern := *task.RecurrencePattern
		if pattern.EndDate != nil {
			endDate := *pattern.EndDate
			pattern.EndDate = &endDate
		}
		if pattern.Start != nil {
			start := *pattern.Start
			pattern.Start = &start
		}
		task.RecurrencePattern = &pattern
	}
	task.Subtasks = nil
	return task
}

func cloneTasks(tasks []entity.Task) []entity.Task {
	result := make([]entity.Task, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, cloneTask(task))
	}
	return result
}
