package dashboard

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/gateway/cache"
	"go-taskflow/internal/domain/gateway/event"
	"go-taskflow/internal/domain/model"
	"go-taskflow/pkg/redis"
)

func TestOverview_EvictedByRedisEvents(t *testing.T) {
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)
	client, err := redis.NewClient(redis.DefaultConfig().WithHost(server.Host()).WithPort(port).WithNamespace("taskflow"))
	require.NoError(t, err)
	defer client.Close()

	tasks, projects := seed(t)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	useCase := NewDashboardUseCase(tasks, projects, cache.NewRedisCacheGateway(client, "dashboard", time.Minute), clock, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evicted := make(chan model.EventType, 1)
	subscriber, err := event.NewRedisSubscriber(client, func(ctx context.Context, e model.TaskEvent) error {
		err := useCase.Invalidate(ctx, e)
		evicted <- e.Type
		return err
	})
	require.NoError(t, err)
	defer subscriber.Close()

	done := make(chan error, 1)
	go func() { done <- subscriber.Start(ctx) }()
	channel := client.Key(event.Channel)
	require.Eventually(t, func() bool {
		return server.PubSubNumSub(channel)[channel] == 1
	}, 2*time.Second, 5*time.Millisecond)

	first, err := useCase.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, first.Stats.Total)
	assert.True(t, server.Exists("taskflow::dashboard::overview"))

	_, err = tasks.Create(ctx, entity.Task{Title: "New", Priority: entity.PriorityLow, ProjectID: 1})
	require.NoError(t, err)
	stale, err := useCase.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stale.Stats.Total)

	event.Emit(ctx, event.NewRedisPublisher(client), model.EventTaskCreated, clock.Now())
	select {
	case got := <-evicted:
		assert.Equal(t, model.EventTaskCreated, got)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered to the subscriber")
	}
	assert.False(t, server.Exists("taskflow::dashboard::overview"))

	fresh, err := useCase.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, fresh.Stats.Total)

	cancel()
	assert.NoError(t, <-done)
}
