package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	_ "go-taskflow/configs"
	"go-taskflow/internal/domain/model"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecurrence struct {
	mu         sync.Mutex
	requestIDs []string
	err        error
}

func (f *fakeRecurrence) CreateSeries(context.Context, model.CreateSeriesDTO) (*model.SeriesDTO, error) {
	return nil, nil
}

func (f *fakeRecurrence) Preview(model.PreviewDTO) ([]time.Time, error) { return nil, nil }

func (f *fakeRecurrence) ExtendSeries(context.Context, string, string) (*model.SeriesDTO, error) {
	return nil, nil
}

func (f *fakeRecurrence) ExtendAll(_ context.Context, requestID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requestIDs = append(f.requestIDs, requestID)
	return len(f.requestIDs), f.err
}

func (f *fakeRecurrence) StopSeries(context.Context, string) (*model.StopSeriesDTO, error) {
	return nil, nil
}

type fakeNotification struct {
	calls int
	err   error
}

func (f *fakeNotification) SendOverdueDigest(context.Context) (*model.OverdueDigest, error) {
	f.calls++
	return nil, f.err
}

func TestRecurrenceScheduler_ExecuteScheduledTask(t *testing.T) {
	useCase := &fakeRecurrence{}
	scheduler := NewRecurrenceScheduler(useCase, nil, RecurrenceSchedulerConfig{CronExpression: "0 3 * * *"})

	scheduler.ExecuteScheduledTask()
	scheduler.ExecuteScheduledTask()

	require.Len(t, useCase.requestIDs, 2)
	assert.NotEmpty(t, useCase.requestIDs[0])
	assert.NotEqual(t, useCase.requestIDs[0], useCase.requestIDs[1])
}

func TestRecurrenceScheduler_ExecuteToleratesFailure(t *testing.T) {
	useCase := &fakeRecurrence{err: errors.New("boom")}
	scheduler := NewRecurrenceScheduler(useCase, nil, RecurrenceSchedulerConfig{CronExpression: "0 3 * * *"})

	assert.NotPanics(t, func() { scheduler.execute(context.Background(), "req-1") })
	assert.Equal(t, []string{"req-1"}, useCase.requestIDs)
}

func TestRecurrenceScheduler_InitWithoutLock(t *testing.T) {
	scheduler := NewRecurrenceScheduler(&fakeRecurrence{}, nil, RecurrenceSchedulerConfig{CronExpression: "0 3 * * *"})

	require.NoError(t, scheduler.InitRecurrenceScheduleTasks(context.Background()))
	assert.Len(t, scheduler.cron.Entries(), 1)
	scheduler.Stop()
}

func TestRecurrenceScheduler_InvalidCron(t *testing.T) {
	scheduler := NewRecurrenceScheduler(&fakeRecurrence{}, nil, RecurrenceSchedulerConfig{CronExpression: "every day"})

	assert.Error(t, scheduler.InitRecurrenceScheduleTasks(context.Background()))
	assert.Empty(t, scheduler.cron.Entries())
}

func TestRecurrenceScheduler_LockDefaults(t *testing.T) {
	scheduler := NewRecurrenceScheduler(&fakeRecurrence{}, nil, RecurrenceSchedulerConfig{})
	assert.Equal(t, 10*time.Minute, scheduler.getLockTTL())
	assert.Equal(t, time.Minute, scheduler.getRefreshInterval())

	scheduler = NewRecurrenceScheduler(&fakeRecurrence{}, nil, RecurrenceSchedulerConfig{LockTTL: time.Hour, RefreshInterval: 5 * time.Minute})
	assert.Equal(t, time.Hour, scheduler.getLockTTL())
	assert.Equal(t, 5*time.Minute, scheduler.getRefreshInterval())
}

func TestDigestScheduler(t *testing.T) {
	t.Run("executes the digest", func(t *testing.T) {
		useCase := &fakeNotification{}
		scheduler, err := NewDigestScheduler(useCase, time.Hour, clockwork.NewFakeClock())
		require.NoError(t, err)

		scheduler.ExecuteScheduledTask(context.Background())
		assert.Equal(t, 1, useCase.calls)

		useCase.err = errors.New("webhook down")
		assert.NotPanics(t, func() { scheduler.ExecuteScheduledTask(context.Background()) })
		assert.Equal(t, 2, useCase.calls)
	})

	t.Run("registers one job", func(t *testing.T) {
		scheduler, err := NewDigestScheduler(&fakeNotification{}, time.Hour, clockwork.NewFakeClock())
		require.NoError(t, err)

		require.NoError(t, scheduler.InitDigestScheduleTasks())
		jobs := scheduler.scheduler.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, "overdue_digest", jobs[0].Name())
		scheduler.Stop()
	})

	t.Run("rejects a zero interval", func(t *testing.T) {
		scheduler, err := NewDigestScheduler(&fakeNotification{}, 0, clockwork.NewFakeClock())
		require.NoError(t, err)

		assert.Error(t, scheduler.InitDigestScheduleTasks())
	})
}
