package recurrence

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
	"go-taskflow/internal/domain/gateway/queue"
	"go-taskflow/internal/domain/model"
)

type recordingSender struct {
	batches [][]queue.BatchMessage
}

func (s *recordingSender) SendMessage(context.Context, string, any) error {
	return nil
}

func (s *recordingSender) SendMessageBatch(_ context.Context, _ string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	s.batches = append(s.batches, messages)
	result := &queue.BatchResult{Successful: make([]string, 0, len(messages)), Failed: []string{}}
	for _, m := range messages {
		result.Successful = append(result.Successful, m.MessageID)
	}
	return result, nil
}

type fixture struct {
	tasks    *db.MemoryTaskGateway
	projects *db.MemoryProjectGateway
	clock    *clockwork.FakeClock
	project  int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tasks := db.NewMemoryTaskGateway()
	projects := db.NewMemoryProjectGateway(tasks)
	project, err := projects.Create(context.Background(), entity.Project{Name: "Chores"})
	require.NoError(t, err)
	return &fixture{
		tasks:    tasks,
		projects: projects,
		clock:    clockwork.NewFakeClockAt(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)),
		project:  project.ID,
	}
}

func (f *fixture) useCase(horizon time.Duration, sender queue.Sender) UseCase {
	return NewRecurrenceUseCase(horizon, "recurrence-queue", sender, f.tasks, f.projects, event.NewLocalPublisher(), f.clock)
}

func (f *fixture) series(start time.Time, pattern entity.RecurrencePattern) model.CreateSeriesDTO {
	return model.CreateSeriesDTO{Title: "Water plants", ProjectID: f.project, Deadline: &start, Pattern: pattern}
}

func at(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 9, 0, 0, 0, time.UTC)
}

func deadlines(tasks []entity.Task) []time.Time {
	dates := make([]time.Time, len(tasks))
	for i, task := range tasks {
		dates[i] = *task.Deadline
	}
	return dates
}

func TestCreateSeries_UpToHorizon(t *testing.T) {
	f := newFixture(t)
	useCase := f.useCase(30*24*time.Hour, nil)

	series, err := useCase.CreateSeries(context.Background(), f.series(at(time.March, 15), entity.RecurrencePattern{Type: entity.RecurrenceWeekly}))
	require.NoError(t, err)

	assert.NotEmpty(t, series.RecurringID)
	assert.Equal(t, []time.Time{at(time.March, 15), at(time.March, 22), at(time.March, 29), at(time.April, 5), at(time.April, 12)}, deadlines(series.Tasks))
	for _, task := range series.Tasks {
		assert.True(t, task.IsRecurring)
		assert.Equal(t, series.RecurringID, task.RecurringID)
		assert.Equal(t, entity.PriorityMedium, task.Priority)
		require.NotNil(t, task.RecurrencePattern)
		assert.Equal(t, entity.RecurrenceWeekly, task.RecurrencePattern.Type)
	}
}

func TestCreateSeries_Validation(t *testing.T) {
	f := newFixture(t)
	useCase := f.useCase(24*time.Hour, nil)

	missingDeadline := f.series(at(time.March, 15), entity.RecurrencePattern{Type: entity.RecurrenceDaily})
	missingDeadline.Deadline = nil
	badType := f.series(at(time.March, 15), entity.RecurrencePattern{Type: "hourly"})
	badCron := f.series(at(time.March, 15), entity.RecurrencePattern{Type: entity.RecurrenceCron, Expression: "every day"})
	noProject := f.series(at(time.March, 15), entity.RecurrencePattern{Type: entity.RecurrenceDaily})
	noProject.ProjectID = 0

	tests := []struct {
		name    string
		dto     model.CreateSeriesDTO
		message string
	}{
		{name: "deadline required", dto: missingDeadline, message: "A recurring task needs a first deadline"},
		{name: "unknown type", dto: badType, message: "Invalid recurrence type hourly"},
		{name: "invalid cron", dto: badCron, message: "Invalid recurrence cron expression every day"},
		{name: "project required", dto: noProject, message: "Task project is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.CreateSeries(context.Background(), tt.dto)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrValidation))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestExtendSeries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	useCase := f.useCase(72*time.Hour, nil)

	series, err := useCase.CreateSeries(ctx, f.series(at(time.March, 16), entity.RecurrencePattern{Type: entity.RecurrenceDaily}))
	require.NoError(t, err)
	require.Len(t, series.Tasks, 3)

	f.clock.Advance(48 * time.Hour)
	extended, err := useCase.ExtendSeries(ctx, series.RecurringID, "req-1")
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(time.March, 19), at(time.March, 20)}, deadlines(extended.Tasks))

	again, err := useCase.ExtendSeries(ctx, series.RecurringID, "req-2")
	require.NoError(t, err)
	assert.Empty(t, again.Tasks)

	_, err = useCase.ExtendSeries(ctx, "missing", "req-3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.Equal(t, "Recurring series missing not found", err.Error())
}

func TestExtendSeries_MaxOccurrencesCountsExisting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	useCase := f.useCase(72*time.Hour, nil)

	series, err := useCase.CreateSeries(ctx, f.series(at(time.March, 16), entity.RecurrencePattern{Type: entity.RecurrenceDaily, MaxOccurrences: 4}))
	require.NoError(t, err)
	require.Len(t, series.Tasks, 3)

	f.clock.Advance(5 * 24 * time.Hour)
	extended, err := useCase.ExtendSeries(ctx, series.RecurringID, "req")
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(time.March, 19)}, deadlines(extended.Tasks))
}

func TestExtendSeries_MonthlyKeepsAnchorDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	useCase := f.useCase(72*time.Hour, nil)

	series, err := useCase.CreateSeries(ctx, f.series(at(time.January, 31), entity.RecurrencePattern{Type: entity.RecurrenceMonthly}))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(time.January, 31), at(time.February, 29)}, deadlines(series.Tasks))

	f.clock.Advance(30 * 24 * time.Hour)
	extended, err := useCase.ExtendSeries(ctx, series.RecurringID, "req")
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(time.March, 31)}, deadlines(extended.Tasks))
}

func TestExtendSeries_AnchorSurvivesDeletedFirstOccurrence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	useCase := f.useCase(17*24*time.Hour, nil)

	series, err := useCase.CreateSeries(ctx, f.series(at(time.January, 31), entity.RecurrencePattern{Type: entity.RecurrenceMonthly}))
	require.NoError(t, err)
	require.Equal(t, []time.Time{at(time.January, 31), at(time.February, 29), at(time.March, 31)}, deadlines(series.Tasks))
	require.NotNil(t, series.Tasks[0].RecurrencePattern.Start)
	assert.Equal(t, at(time.January, 31), *series.Tasks[0].RecurrencePattern.Start)

	require.NoError(t, f.tasks.Delete(ctx, series.Tasks[0].ID))

	f.clock.Advance(30 * 24 * time.Hour)
	extended, err := useCase.ExtendSeries(ctx, series.RecurringID, "req")
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(time.April, 30)}, deadlines(extended.Tasks))
}

func TestExtendSeries_DeletedOccurrencesStillCountTowardsMax(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	useCase := f.useCase(72*time.Hour, nil)

	series, err := useCase.CreateSeries(ctx, f.series(at(time.March, 16), entity.RecurrencePattern{Type: entity.RecurrenceDaily, MaxOccurrences: 4}))
	require.NoError(t, err)
	require.Len(t, series.Tasks, 3)
	require.NoError(t, f.tasks.Delete(ctx, series.Tasks[1].ID))

	f.clock.Advance(5 * 24 * time.Hour)
	extended, err := useCase.ExtendSeries(ctx, series.RecurringID, "req")
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(time.March, 19)}, deadlines(extended.Tasks))
}

func TestStopSeries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	useCase := f.useCase(72*time.Hour, nil)

	series, err := useCase.CreateSeries(ctx, f.series(at(time.March, 14), entity.RecurrencePattern{Type: entity.RecurrenceDaily}))
	require.NoError(t, err)
	require.Len(t, series.Tasks, 5)

	stopped, err := useCase.StopSeries(ctx, series.RecurringID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stopped.DeletedCount)

	remaining, err := f.tasks.FindByRecurringID(ctx, series.RecurringID)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(time.March, 14), at(time.March, 15)}, deadlines(remaining))

	f.clock.Advance(10 * 24 * time.Hour)
	extended, err := useCase.ExtendSeries(ctx, series.RecurringID, "req")
	require.NoError(t, err)
	assert.Empty(t, extended.Tasks)
}

func TestExtendAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inline := f.useCase(48*time.Hour, nil)

	first, err := inline.CreateSeries(ctx, f.series(at(time.March, 16), entity.RecurrencePattern{Type: entity.RecurrenceDaily}))
	require.NoError(t, err)
	second, err := inline.CreateSeries(ctx, f.series(at(time.March, 16), entity.RecurrencePattern{Type: entity.RecurrenceWeekly}))
	require.NoError(t, err)
	_, err = f.tasks.Create(ctx, entity.Task{Title: "One-off", ProjectID: f.project, Priority: entity.PriorityLow})
	require.NoError(t, err)

	t.Run("enqueues through the sender", func(t *testing.T) {
		sender := &recordingSender{}
		count, err := f.useCase(48*time.Hour, sender).ExtendAll(ctx, "req-queue")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		require.Len(t, sender.batches, 1)
		assert.Equal(t, []queue.BatchMessage{
			{MessageID: first.RecurringID, Body: model.ExtendSeriesMessage{RecurringID: first.RecurringID, RequestID: "req-queue"}},
			{MessageID: second.RecurringID, Body: model.ExtendSeriesMessage{RecurringID: second.RecurringID, RequestID: "req-queue"}},
		}, sender.batches[0])
	})

	t.Run("extends inline without a sender", func(t *testing.T) {
		f.clock.Advance(24 * time.Hour)
		count, err := inline.ExtendAll(ctx, "req-inline")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		daily, err := f.tasks.FindByRecurringID(ctx, first.RecurringID)
		require.NoError(t, err)
		assert.Len(t, daily, 3)
	})
}

func TestPreview(t *testing.T) {
	f := newFixture(t)
	useCase := f.useCase(24*time.Hour, nil)

	dates, err := useCase.Preview(model.PreviewDTO{
		Pattern: entity.RecurrencePattern{Type: entity.RecurrenceDaily, Interval: 2},
		Start:   at(time.January, 1),
		Count:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(time.January, 1), at(time.January, 3), at(time.January, 5)}, dates)

	dates, err = useCase.Preview(model.PreviewDTO{Pattern: entity.RecurrencePattern{Type: entity.RecurrenceWeekly}, Start: at(time.January, 1)})
	require.NoError(t, err)
	assert.Len(t, dates, 10)
}
