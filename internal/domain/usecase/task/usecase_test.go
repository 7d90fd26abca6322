package task

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

var referenceNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	useCase  UseCase
	tasks    *db.MemoryTaskGateway
	projects *db.MemoryProjectGateway
	subtasks *db.MemorySubtaskGateway
	clock    *clockwork.FakeClock
	events   []model.TaskEvent
	work     int64
	home     int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		tasks:    db.NewMemoryTaskGateway(),
		subtasks: db.NewMemorySubtaskGateway(),
		clock:    clockwork.NewFakeClockAt(referenceNow),
	}
	f.projects = db.NewMemoryProjectGateway(f.tasks)
	publisher := event.NewLocalPublisher(func(_ context.Context, e model.TaskEvent) error {
		f.events = append(f.events, e)
		return nil
	})
	f.useCase = NewTaskUseCase(f.tasks, f.projects, f.subtasks, publisher, f.clock, time.UTC)

	work, err := f.projects.Create(ctx, entity.Project{Name: "Work", Color: "#111111"})
	require.NoError(t, err)
	home, err := f.projects.Create(ctx, entity.Project{Name: "Home", Color: "#222222"})
	require.NoError(t, err)
	f.work, f.home = work.ID, home.ID
	return f
}

func (f *fixture) seed(t *testing.T, tasks ...entity.Task) []entity.Task {
	t.Helper()
	created, err := f.tasks.CreateBatch(context.Background(), tasks)
	require.NoError(t, err)
	return created
}

func at(day, hour int) *time.Time {
	value := time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
	return &value
}

func assertKind(t *testing.T, err error, kind error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "unexpected error kind: %v", err)
	assert.Equal(t, message, err.Error())
}

func TestCreate_AppliesDefaults(t *testing.T) {
	f := newFixture(t)

	created, err := f.useCase.Create(context.Background(), model.CreateTaskDTO{Title: "  Write report ", ProjectID: f.work})
	require.NoError(t, err)

	assert.Equal(t, "Write report", created.Title)
	assert.Equal(t, entity.PriorityMedium, created.Priority)
	assert.Equal(t, "", created.Description)
	assert.False(t, created.Completed)
	assert.True(t, created.CreatedAt.Equal(referenceNow))
	require.Len(t, f.events, 1)
	assert.Equal(t, model.EventTaskCreated, f.events[0].Type)
	assert.Equal(t, []int64{created.ID}, f.events[0].EntityIDs)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		dto     model.CreateTaskDTO
		message string
	}{
		{name: "missing title", dto: model.CreateTaskDTO{Title: "  ", ProjectID: f.work}, message: "Task title is required"},
		{name: "missing project", dto: model.CreateTaskDTO{Title: "A"}, message: "Task project is required"},
		{name: "unknown project", dto: model.CreateTaskDTO{Title: "A", ProjectID: 99}, message: "Project 99 does not exist"},
		{name: "bad priority", dto: model.CreateTaskDTO{Title: "A", ProjectID: f.work, Priority: "urgent"}, message: "Invalid priority urgent, expected low, medium or high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.useCase.Create(context.Background(), tt.dto)
			assertKind(t, err, model.ErrValidation, tt.message)
		})
	}
	assert.Empty(t, f.events)
}

func TestFindByID_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.useCase.FindByID(context.Background(), 42)
	assertKind(t, err, model.ErrNotFound, "Task not found")
}

func TestUpdate_CompletionTransitions(t *testing.T) {
	f := newFixture(t)
	task := f.seed(t, entity.Task{Title: "Pay rent", Priority: entity.PriorityHigh, ProjectID: f.work, CreatedAt: referenceNow})[0]
	ctx := context.Background()
	completed, reopened := true, false

	updated, err := f.useCase.Update(ctx, task.ID, model.UpdateTaskDTO{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.CompletedAt.Equal(referenceNow))

	f.clock.Advance(time.Hour)
	updated, err = f.useCase.Update(ctx, task.ID, model.UpdateTaskDTO{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.CompletedAt.Equal(referenceNow), "completing twice keeps the first timestamp")

	updated, err = f.useCase.Update(ctx, task.ID, model.UpdateTaskDTO{Completed: &reopened})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt, "reopening keeps completedAt")
}

func TestUpdate_PartialFields(t *testing.T) {
	f := newFixture(t)
	task := f.seed(t, entity.Task{Title: "Old", Description: "keep", Priority: entity.PriorityLow, Deadline: at(20, 9), ProjectID: f.work})[0]
	ctx := context.Background()

	title, priority := "New", "HIGH"
	updated, err := f.useCase.Update(ctx, task.ID, model.UpdateTaskDTO{Title: &title, Priority: &priority, ProjectID: &f.home})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "keep", updated.Description)
	assert.Equal(t, entity.PriorityHigh, updated.Priority)
	assert.Equal(t, f.home, updated.ProjectID)
	assert.True(t, updated.Deadline.Equal(*at(20, 9)))

	updated, err = f.useCase.Update(ctx, task.ID, model.UpdateTaskDTO{ClearDeadline: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Deadline)

	missing := int64(77)
	_, err = f.useCase.Update(ctx, task.ID, model.UpdateTaskDTO{ProjectID: &missing})
	assertKind(t, err, model.ErrValidation, "Project 77 does not exist")

	_, err = f.useCase.Update(ctx, 999, model.UpdateTaskDTO{Title: &title})
	assertKind(t, err, model.ErrNotFound, "Task not found")
}

func TestToggleComplete(t *testing.T) {
	f := newFixture(t)
	task := f.seed(t, entity.Task{Title: "Gym", ProjectID: f.home, Priority: entity.PriorityLow})[0]

	toggled, err := f.useCase.ToggleComplete(context.Background(), task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = f.useCase.ToggleComplete(context.Background(), task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestDelete_CascadesSubtasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tasks := f.seed(t,
		entity.Task{Title: "Parent", ProjectID: f.work, Priority: entity.PriorityLow},
		entity.Task{Title: "Other", ProjectID: f.work, Priority: entity.PriorityLow},
	)
	_, err := f.subtasks.Create(ctx, entity.Subtask{Name: "step", TaskID: tasks[0].ID})
	require.NoError(t, err)
	kept, err := f.subtasks.Create(ctx, entity.Subtask{Name: "other step", TaskID: tasks[1].ID})
	require.NoError(t, err)

	require.NoError(t, f.useCase.Delete(ctx, tasks[0].ID))

	remaining, err := f.subtasks.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)

	err = f.useCase.Delete(ctx, tasks[0].ID)
	assertKind(t, err, model.ErrNotFound, "Task not found")
}

func TestFindAll_FiltersSortsAndPages(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		entity.Task{Title: "Buy groceries", Priority: entity.PriorityLow, Deadline: at(16, 9), ProjectID: f.home},
		entity.Task{Title: "Quarterly report", Description: "finance numbers", Priority: entity.PriorityHigh, Deadline: at(10, 9), ProjectID: f.work},
		entity.Task{Title: "Team meeting", Priority: entity.PriorityMedium, Deadline: at(15, 14), ProjectID: f.work},
		entity.Task{Title: "Old report", Priority: entity.PriorityMedium, ProjectID: f.work, Completed: true},
	)
	ctx := context.Background()

	tests := []struct {
		name   string
		query  model.TaskQuery
		titles []string
		total  int64
	}{
		{name: "all by priority", query: model.TaskQuery{Sort: "priority"}, titles: []string{"Quarterly report", "Team meeting", "Old report", "Buy groceries"}, total: 4},
		{name: "pending by deadline", query: model.TaskQuery{Status: "pending", Sort: "deadline"}, titles: []string{"Quarterly report", "Team meeting", "Buy groceries"}, total: 3},
		{name: "overdue", query: model.TaskQuery{Status: "overdue"}, titles: []string{"Quarterly report"}, total: 1},
		{name: "today", query: model.TaskQuery{Status: "today"}, titles: []string{"Team meeting"}, total: 1},
		{name: "priority filter", query: model.TaskQuery{Priority: "medium"}, titles: []string{"Team meeting", "Old report"}, total: 2},
		{name: "project filter", query: model.TaskQuery{ProjectID: f.home}, titles: []string{"Buy groceries"}, total: 1},
		{name: "substring search", query: model.TaskQuery{Search: "REPORT"}, titles: []string{"Quarterly report", "Old report"}, total: 2},
		{name: "fuzzy search", query: model.TaskQuery{Search: "meetnig", Fuzzy: true}, titles: []string{"Team meeting"}, total: 1},
		{name: "project name search", query: model.TaskQuery{Search: "home", Fields: []string{"project"}}, titles: []string{"Buy groceries"}, total: 1},
		{name: "second page", query: model.TaskQuery{Sort: "priority", Page: 1, Size: 3}, titles: []string{"Buy groceries"}, total: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := f.useCase.FindAll(ctx, tt.query)
			require.NoError(t, err)
			titles := make([]string, 0, len(page.Content))
			for _, task := range page.Content {
				titles = append(titles, task.Title)
			}
			assert.Equal(t, tt.titles, titles)
			assert.Equal(t, tt.total, page.TotalElements)
		})
	}
}

func TestFindAll_InvalidQuery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.useCase.FindAll(ctx, model.TaskQuery{Status: "later"})
	assertKind(t, err, model.ErrValidation, "Invalid status filter later")

	_, err = f.useCase.FindAll(ctx, model.TaskQuery{Sort: "name"})
	assertKind(t, err, model.ErrValidation, "Invalid sort name, expected priority, deadline or created")

	_, err = f.useCase.FindAll(ctx, model.TaskQuery{Priority: "urgent"})
	assertKind(t, err, model.ErrValidation, "Invalid priority urgent, expected low, medium or high")
}

func TestBulkComplete(t *testing.T) {
	f := newFixture(t)
	tasks := f.seed(t,
		entity.Task{Title: "A", ProjectID: f.work, Priority: entity.PriorityLow},
		entity.Task{Title: "B", ProjectID: f.work, Priority: entity.PriorityLow},
	)
	ctx := context.Background()

	result, err := f.useCase.BulkComplete(ctx, []int64{tasks[0].ID, tasks[1].ID})
	require.NoError(t, err)
	require.Len(t, result.Tasks, 2)
	for _, task := range result.Tasks {
		assert.True(t, task.Completed)
		assert.NotNil(t, task.CompletedAt)
	}

	_, err = f.useCase.BulkComplete(ctx, nil)
	assertKind(t, err, model.ErrValidation, "No tasks selected")

	_, err = f.useCase.BulkComplete(ctx, []int64{tasks[0].ID, 99})
	assertKind(t, err, model.ErrValidation, "Some selected tasks not found")
}

func TestBulkDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tasks := f.seed(t,
		entity.Task{Title: "A", ProjectID: f.work, Priority: entity.PriorityLow},
		entity.Task{Title: "B", ProjectID: f.work, Priority: entity.PriorityLow},
		entity.Task{Title: "C", ProjectID: f.work, Priority: entity.PriorityLow},
	)
	_, err := f.subtasks.Create(ctx, entity.Subtask{Name: "step", TaskID: tasks[1].ID})
	require.NoError(t, err)

	_, err = f.useCase.BulkDelete(ctx, []int64{tasks[0].ID, tasks[1].ID, tasks[1].ID})
	assert.EqualError(t, err, "Some selected tasks not found")

	result, err := f.useCase.BulkDelete(ctx, []int64{tasks[0].ID, tasks[1].ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.DeletedCount)

	remaining, err := f.tasks.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "C", remaining[0].Title)

	subtasks, err := f.subtasks.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, subtasks)

	last := f.events[len(f.events)-1]
	assert.Equal(t, model.EventTaskDeleted, last.Type)
	assert.Equal(t, []int64{tasks[0].ID, tasks[1].ID}, last.EntityIDs)
}

func TestBulkMove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tasks := f.seed(t,
		entity.Task{Title: "A", ProjectID: f.work, Priority: entity.PriorityLow},
		entity.Task{Title: "B", ProjectID: f.work, Priority: entity.PriorityLow},
	)
	ids := []int64{tasks[0].ID, tasks[1].ID}

	result, err := f.useCase.BulkMove(ctx, ids, f.home)
	require.NoError(t, err)
	for _, task := range result.Tasks {
		assert.Equal(t, f.home, task.ProjectID)
	}

	_, err = f.useCase.BulkMove(ctx, ids, 0)
	assertKind(t, err, model.ErrValidation, "No target project selected")

	_, err = f.useCase.BulkMove(ctx, ids, 55)
	assertKind(t, err, model.ErrValidation, "Project 55 does not exist")

	_, err = f.useCase.BulkMove(ctx, nil, f.home)
	assertKind(t, err, model.ErrValidation, "No tasks selected")
}

func TestHighlight(t *testing.T) {
	f := newFixture(t)
	task := f.seed(t, entity.Task{Title: "Quarterly Report", Description: "report the numbers", ProjectID: f.work, Priority: entity.PriorityLow})[0]

	highlight, err := f.useCase.Highlight(context.Background(), task.ID, "report")
	require.NoError(t, err)
	assert.Equal(t, task.ID, highlight.TaskID)
	assert.Equal(t, [][2]int{{10, 16}}, highlight.Title)
	assert.Equal(t, [][2]int{{0, 6}}, highlight.Description)
}
