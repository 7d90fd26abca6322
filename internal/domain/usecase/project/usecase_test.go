package project

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

func newUseCase(t *testing.T) (UseCase, *db.MemoryTaskGateway, *[]model.TaskEvent) {
	t.Helper()
	tasks := db.NewMemoryTaskGateway()
	events := make([]model.TaskEvent, 0)
	publisher := event.NewLocalPublisher(func(_ context.Context, e model.TaskEvent) error {
		events = append(events, e)
		return nil
	})
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	return NewProjectUseCase(db.NewMemoryProjectGateway(tasks), tasks, publisher, clock), tasks, &events
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		dto       model.CreateProjectDTO
		wantName  string
		wantColor string
		wantErr   string
	}{
		{name: "default color", dto: model.CreateProjectDTO{Name: " Work "}, wantName: "Work", wantColor: entity.DefaultProjectColor},
		{name: "explicit color", dto: model.CreateProjectDTO{Name: "Home", Color: "#10B981"}, wantName: "Home", wantColor: "#10B981"},
		{name: "name required", dto: model.CreateProjectDTO{Name: "  "}, wantErr: "Project name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase, _, events := newUseCase(t)

			created, err := useCase.Create(context.Background(), tt.dto)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrValidation))
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Empty(t, *events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, created.Name)
			assert.Equal(t, tt.wantColor, created.Color)
			assert.Equal(t, 0, created.TaskCount)
			require.Len(t, *events, 1)
			assert.Equal(t, model.EventProjectChanged, (*events)[0].Type)
		})
	}
}

func TestUpdate_Partial(t *testing.T) {
	useCase, _, _ := newUseCase(t)
	ctx := context.Background()
	created, err := useCase.Create(ctx, model.CreateProjectDTO{Name: "Work", Color: "#111111"})
	require.NoError(t, err)

	name := "Office"
	updated, err := useCase.Update(ctx, created.ID, model.UpdateProjectDTO{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Office", updated.Name)
	assert.Equal(t, "#111111", updated.Color)

	empty := ""
	_, err = useCase.Update(ctx, created.ID, model.UpdateProjectDTO{Name: &empty})
	assert.True(t, errors.Is(err, model.ErrValidation))

	_, err = useCase.Update(ctx, 404, model.UpdateProjectDTO{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.Equal(t, "Project not found", err.Error())
}

func TestDelete_LeavesTasksOrphaned(t *testing.T) {
	useCase, tasks, _ := newUseCase(t)
	ctx := context.Background()
	created, err := useCase.Create(ctx, model.CreateProjectDTO{Name: "Work"})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, entity.Task{Title: "Report", ProjectID: created.ID, Priority: entity.PriorityLow})
	require.NoError(t, err)

	found, err := useCase.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.TaskCount)

	require.NoError(t, useCase.Delete(ctx, created.ID))

	remaining, err := tasks.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, created.ID, remaining[0].ProjectID)

	_, err = useCase.FindByID(ctx, created.ID)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.True(t, errors.Is(useCase.Delete(ctx, created.ID), model.ErrNotFound))
}

func TestFindTasksAndGroups(t *testing.T) {
	useCase, tasks, _ := newUseCase(t)
	ctx := context.Background()
	work, err := useCase.Create(ctx, model.CreateProjectDTO{Name: "Work"})
	require.NoError(t, err)
	home, err := useCase.Create(ctx, model.CreateProjectDTO{Name: "Home"})
	require.NoError(t, err)
	_, err = tasks.CreateBatch(ctx, []entity.Task{
		{Title: "Report", ProjectID: work.ID, Priority: entity.PriorityHigh},
		{Title: "Meeting", ProjectID: work.ID, Priority: entity.PriorityLow},
		{Title: "Orphan", ProjectID: 99, Priority: entity.PriorityLow},
	})
	require.NoError(t, err)

	workTasks, err := useCase.FindTasks(ctx, work.ID)
	require.NoError(t, err)
	assert.Len(t, workTasks, 2)

	_, err = useCase.FindTasks(ctx, 99)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	groups, err := useCase.FindAllWithTasks(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, work.ID, groups[0].ID)
	assert.Equal(t, 2, groups[0].TaskCount)
	assert.Equal(t, home.ID, groups[1].ID)
	assert.Empty(t, groups[1].Tasks)
}
