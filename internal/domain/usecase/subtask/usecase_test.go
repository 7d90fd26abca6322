package subtask

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "go-taskflow/configs"
	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/gateway/db"
	"go-taskflow/internal/domain/gateway/event"
	"go-taskflow/internal/domain/model"
)

func setup(t *testing.T) (UseCase, *entity.Task) {
	t.Helper()
	tasks := db.NewMemoryTaskGateway()
	task, err := tasks.Create(context.Background(), entity.Task{Title: "Release", ProjectID: 1, Priority: entity.PriorityHigh})
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	return NewSubtaskUseCase(db.NewMemorySubtaskGateway(), tasks, event.NewLocalPublisher(), clock), task
}

func TestCreate_Validation(t *testing.T) {
	useCase, task := setup(t)

	tests := []struct {
		name    string
		dto     model.CreateSubtaskDTO
		wantErr string
	}{
		{name: "valid", dto: model.CreateSubtaskDTO{Name: " Tag build ", TaskID: task.ID}},
		{name: "name required", dto: model.CreateSubtaskDTO{Name: "", TaskID: task.ID}, wantErr: "Subtask name is required"},
		{name: "task required", dto: model.CreateSubtaskDTO{Name: "Tag"}, wantErr: "Subtask task is required"},
		{name: "unknown task", dto: model.CreateSubtaskDTO{Name: "Tag", TaskID: 42}, wantErr: "Task 42 does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := useCase.Create(context.Background(), tt.dto)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrValidation))
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Tag build", created.Name)
			assert.False(t, created.Completed)
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	useCase, task := setup(t)
	ctx := context.Background()
	created, err := useCase.Create(ctx, model.CreateSubtaskDTO{Name: "Write notes", Description: "draft", TaskID: task.ID})
	require.NoError(t, err)

	done := true
	updated, err := useCase.Update(ctx, created.ID, model.UpdateSubtaskDTO{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "draft", updated.Description)

	byTask, err := useCase.FindByTaskID(ctx, task.ID)
	require.NoError(t, err)
	assert.Len(t, byTask, 1)

	require.NoError(t, useCase.Delete(ctx, created.ID))
	_, err = useCase.FindByID(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.Equal(t, "Subtask not found", err.Error())
}

func TestBulkOperations(t *testing.T) {
	useCase, task := setup(t)
	ctx := context.Background()
	ids := make([]int64, 0, 3)
	for _, name := range []string{"a", "b", "c"} {
		created, err := useCase.Create(ctx, model.CreateSubtaskDTO{Name: name, TaskID: task.ID})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	completed, err := useCase.BulkComplete(ctx, ids[:2])
	require.NoError(t, err)
	require.Len(t, completed, 2)
	for _, subtask := range completed {
		assert.True(t, subtask.Completed)
	}

	_, err = useCase.BulkComplete(ctx, nil)
	require.Error(t, err)
	assert.Equal(t, "No subtasks selected", err.Error())

	_, err = useCase.BulkDelete(ctx, []int64{ids[0], 999})
	require.Error(t, err)
	assert.Equal(t, "Some selected subtasks not found", err.Error())

	_, err = useCase.BulkDelete(ctx, []int64{ids[0], ids[2], ids[2]})
	require.Error(t, err)
	assert.Equal(t, "Some selected subtasks not found", err.Error())

	deleted, err := useCase.BulkDelete(ctx, []int64{ids[0], ids[2]})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := useCase.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, ids[1], remaining[0].ID)
}
