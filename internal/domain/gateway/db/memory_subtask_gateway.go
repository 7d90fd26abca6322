package db

import (
	"context"

	"go-taskflow/internal/domain/entity"
)

type MemorySubtaskGateway struct {
	store *memoryStore[entity.Subtask]
}

var _ SubtaskGateway = (*MemorySubtaskGateway)(nil)

func NewMemorySubtaskGateway() *MemorySubtaskGateway {
	return &MemorySubtaskGateway{store: newMemoryStore(
		func(s entity.Subtask) int64 { return s.ID },
		func(s entity.Subtask, id int64) entity.Subtask { s.ID = id; return s },
	)}
}

func (gateway *MemorySubtaskGateway) FindAll(_ context.Context) ([]entity.Subtask, error) {
	return cloneSubtasks(gateway.store.list(nil)), nil
}

func (gateway *MemorySubtaskGateway) FindByID(_ context.Context, id int64) (*entity.Subtask, error) {
	subtask, ok := gateway.store.get(id)
	if !ok {
		return nil, nil
	}
	subtask = cloneSubtask(subtask)
	return &subtask, nil
}

func (gateway *MemorySubtaskGateway) FindByIDs(_ context.Context, ids []int64) ([]entity.Subtask, error) {
	set := idSet(ids)
	return cloneSubtasks(gateway.store.list(func(s entity.Subtask) bool {
		_, ok := set[s.ID]
		return ok
	})), nil
}

func (gateway *MemorySubtaskGateway) FindByTaskID(_ context.Context, taskID int64) ([]entity.Subtask, error) {
	return cloneSubtasks(gateway.store.list(func(s entity.Subtask) bool {
		return s.TaskID == taskID
	})), nil
}

func (gateway *MemorySubtaskGateway) Create(_ context.Context, subtask entity.Subtask) (*entity.Subtask, error) {
	created := cloneSubtask(gateway.store.insert(cloneSubtask(subtask))[0])
	return &created, nil
}

func (gateway *MemorySubtaskGateway) Update(_ context.Context, subtask entity.Subtask) (*entity.Subtask, error) {
	replaced := gateway.store.replace(cloneSubtask(subtask))
	if len(replaced) == 0 {
		return nil, nil
	}
	updated := cloneSubtask(replaced[0])
	return &updated, nil
}

func (gateway *MemorySubtaskGateway) UpdateBatch(_ context.Context, subtasks []entity.Subtask) ([]entity.Subtask, error) {
	return cloneSubtasks(gateway.store.replace(cloneSubtasks(subtasks)...)), nil
}

func (gateway *MemorySubtaskGateway) Delete(_ context.Context, id int64) error {
	gateway.store.remove(id)
	return nil
}

func (gateway *MemorySubtaskGateway) DeleteBatch(_ context.Context, ids []int64) (int64, error) {
	return gateway.store.remove(ids...), nil
}

func (gateway *MemorySubtaskGateway) DeleteByTaskID(_ context.Context, taskID int64) (int64, error) {
	return gateway.store.removeWhere(func(s entity.Subtask) bool {
		return s.TaskID == taskID
	}), nil
}

func cloneSubtask(subtask entity.Subtask) entity.Subtask {
	if subtask.Deadline != nil {
		deadline := *subtask.Deadline
		subtask.Deadline = &deadline
	}
	return subtask
}

func cloneSubtasks(subtasks []entity.Subtask) []entity.Subtask {
	result := make([]entity.Subtask, 0, len(subtasks))
	for _, subtask := range subtasks {
		result = append(result, cloneSubtask(subtask))
	}
	return result
}
