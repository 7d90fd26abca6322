package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKey(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		parts     []string
		want      string
	}{
		{name: "namespace and parts", namespace: "taskflow", parts: []string{"dashboard", "overview"}, want: "taskflow::dashboard::overview"},
		{name: "no namespace", parts: []string{"dashboard", "overview"}, want: "dashboard::overview"},
		{name: "empty parts skipped", namespace: "taskflow", parts: []string{"", "lock", "schedule::recurrence"}, want: "taskflow::lock::schedule::recurrence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildKey(tt.namespace, tt.parts...))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, DefaultConfig().WithHost("").Validate())
	assert.Error(t, DefaultConfig().WithPort(0).Validate())
	assert.Error(t, DefaultConfig().WithDatabase(16).Validate())
	assert.Equal(t, "cache:6380", DefaultConfig().WithHost("cache").WithPort(6380).Addr())
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(DefaultConfig().WithPort(-1))
	assert.Error(t, err)
}

func TestNewScheduledTaskLock_Key(t *testing.T) {
	client, err := NewClient(DefaultConfig().WithNamespace("taskflow"))
	require.NoError(t, err)
	defer client.Close()

	lock := NewScheduledTaskLock(client, "recurrence", time.Minute, 20*time.Second, "jobs")
	assert.Equal(t, "taskflow::jobs::lock::schedule::recurrence", lock.Key())

	other := NewScheduledTaskLock(client, "recurrence", time.Minute, 20*time.Second, "jobs")
	assert.NotEqual(t, lock.value, other.value)
}

func TestRateLimiterOptions_Validate(t *testing.T) {
	assert.NoError(t, (&RateLimiterOptions{MaxTransactionsPerSecond: 5}).Validate())
	assert.Error(t, (&RateLimiterOptions{}).Validate())
	assert.Error(t, (&RateLimiterOptions{MaxTransactionsPerMinute: -1}).Validate())
}

func TestRetryOperation(t *testing.T) {
	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := RetryOperation(context.Background(), 3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return errors.New("temporary")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error", func(t *testing.T) {
		calls := 0
		err := RetryOperation(context.Background(), 2, time.Millisecond, func() error {
			calls++
			return errors.New("permanent")
		})
		assert.EqualError(t, err, "permanent")
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := RetryOperation(ctx, 5, time.Second, func() error { return errors.New("fail") })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
