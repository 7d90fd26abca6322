package notification

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
	"go-taskflow/internal/domain/model"
)

type recordingGateway struct {
	digests []model.OverdueDigest
	err     error
}

func (g *recordingGateway) SendOverdueDigest(_ context.Context, digest model.OverdueDigest) error {
	if g.err != nil {
		return g.err
	}
	g.digests = append(g.digests, digest)
	return nil
}

func at(day, hour int) *time.Time {
	value := time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
	return &value
}

func TestSendOverdueDigest(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	tasks := db.NewMemoryTaskGateway()
	_, err := tasks.CreateBatch(ctx, []entity.Task{
		{Title: "Late invoice", Priority: entity.PriorityHigh, Deadline: at(13, 9), ProjectID: 1},
		{Title: "Later invoice", Priority: entity.PriorityLow, Deadline: at(10, 9), ProjectID: 1},
		{Title: "Due today", Priority: entity.PriorityLow, Deadline: at(15, 8), ProjectID: 1},
		{Title: "Closed", Priority: entity.PriorityLow, Deadline: at(1, 8), ProjectID: 1, Completed: true},
	})
	require.NoError(t, err)

	gateway := &recordingGateway{}
	digest, err := NewNotificationUseCase(gateway, tasks, clock, time.UTC).SendOverdueDigest(ctx)
	require.NoError(t, err)
	require.NotNil(t, digest)

	assert.Equal(t, 2, digest.Count)
	require.Len(t, digest.Tasks, 2)
	assert.Equal(t, "Later invoice", digest.Tasks[0].Title)
	assert.Equal(t, "Mar 10 (Past)", digest.Tasks[0].Relative)
	assert.Equal(t, "high", digest.Tasks[1].Priority)
	require.Len(t, gateway.digests, 1)
}

func TestSendOverdueDigest_Skipped(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	tasks := db.NewMemoryTaskGateway()
	_, err := tasks.Create(ctx, entity.Task{Title: "Future", Priority: entity.PriorityLow, Deadline: at(20, 9), ProjectID: 1})
	require.NoError(t, err)

	gateway := &recordingGateway{}
	digest, err := NewNotificationUseCase(gateway, tasks, clock, time.UTC).SendOverdueDigest(ctx)
	require.NoError(t, err)
	assert.Nil(t, digest)
	assert.Empty(t, gateway.digests)

	digest, err = NewNotificationUseCase(nil, tasks, clock, time.UTC).SendOverdueDigest(ctx)
	require.NoError(t, err)
	assert.Nil(t, digest)
}

func TestSendOverdueDigest_GatewayFailure(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	tasks := db.NewMemoryTaskGateway()
	_, err := tasks.Create(ctx, entity.Task{Title: "Late", Priority: entity.PriorityLow, Deadline: at(1, 9), ProjectID: 1})
	require.NoError(t, err)

	_, err = NewNotificationUseCase(&recordingGateway{err: errors.New("webhook down")}, tasks, clock, time.UTC).SendOverdueDigest(ctx)
	assert.EqualError(t, err, "webhook down")
}
