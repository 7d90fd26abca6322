package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "go-taskflow/configs"
	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

var referenceNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func at(year int, month time.Month, day, hour int) *time.Time {
	t := time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func testClock() Clock {
	return Clock{Now: referenceNow, Location: time.UTC}
}

func sampleTasks() []entity.Task {
	return []entity.Task{
		{ID: 1, Title: "Write quarterly report", Description: "Numbers for Q1", Priority: entity.PriorityHigh, ProjectID: 1,
			Deadline: at(2024, time.March, 14, 9), Completed: true, CompletedAt: at(2024, time.March, 15, 8),
			CreatedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Buy groceries", Description: "Milk and eggs", Priority: entity.PriorityLow, ProjectID: 2,
			Deadline: at(2024, time.March, 14, 9), CreatedAt: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Title: "Call the bank", Priority: entity.PriorityMedium, ProjectID: 2,
			Deadline: at(2024, time.March, 15, 18), CreatedAt: time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)},
		{ID: 4, Title: "Plan vacation", Description: "Flights and hotel", Priority: entity.PriorityHigh, ProjectID: 1,
			CreatedAt: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)},
	}
}

func ids(tasks []entity.Task) []int64 {
	result := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, task.ID)
	}
	return result
}

func TestClock_Classification(t *testing.T) {
	clock := testClock()

	tests := []struct {
		name     string
		task     entity.Task
		overdue  bool
		dueToday bool
	}{
		{name: "yesterday pending", task: entity.Task{Deadline: at(2024, time.March, 14, 9)}, overdue: true},
		{name: "yesterday completed", task: entity.Task{Deadline: at(2024, time.March, 14, 9), Completed: true}},
		{name: "earlier today", task: entity.Task{Deadline: at(2024, time.March, 15, 8)}, dueToday: true},
		{name: "later today", task: entity.Task{Deadline: at(2024, time.March, 15, 20)}, dueToday: true},
		{name: "tomorrow", task: entity.Task{Deadline: at(2024, time.March, 16, 9)}},
		{name: "no deadline", task: entity.Task{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overdue, clock.IsOverdue(tt.task))
			assert.Equal(t, tt.dueToday, clock.IsDueToday(tt.task))
		})
	}
}

func TestClock_TodayFollowsLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC on the 15th is still the 14th in UTC-3
	clock := Clock{Now: time.Date(2024, time.March, 15, 1, 0, 0, 0, time.UTC), Location: saoPaulo}

	task := entity.Task{Deadline: at(2024, time.March, 14, 23)}
	assert.True(t, clock.IsDueToday(task))
	assert.False(t, clock.IsOverdue(task))
}

func TestApply(t *testing.T) {
	clock := testClock()
	names := map[int64]string{1: "Work", 2: "Personal"}

	tests := []struct {
		name     string
		criteria Criteria
		want     []int64
	}{
		{name: "all", criteria: Criteria{Status: StatusAll}, want: []int64{1, 2, 3, 4}},
		{name: "pending", criteria: Criteria{Status: StatusPending}, want: []int64{2, 3, 4}},
		{name: "completed", criteria: Criteria{Status: StatusCompleted}, want: []int64{1}},
		{name: "overdue", criteria: Criteria{Status: StatusOverdue}, want: []int64{2}},
		{name: "today", criteria: Criteria{Status: StatusToday}, want: []int64{3}},
		{name: "priority", criteria: Criteria{Priority: entity.PriorityHigh}, want: []int64{1, 4}},
		{name: "project", criteria: Criteria{ProjectID: 2}, want: []int64{2, 3}},
		{name: "substring on description", criteria: Criteria{Search: SearchOptions{Term: "EGGS"}}, want: []int64{2}},
		{name: "project name field", criteria: Criteria{Search: SearchOptions{Term: "personal", Fields: []Field{FieldProject}}}, want: []int64{2, 3}},
		{name: "title only skips description", criteria: Criteria{Search: SearchOptions{Term: "hotel", Fields: []Field{FieldTitle}}}},
		{name: "exact search misses typo", criteria: Criteria{Search: SearchOptions{Term: "reprot"}}},
		{name: "fuzzy search tolerates typo", criteria: Criteria{Search: SearchOptions{Term: "reprot", Fuzzy: true}}, want: []int64{1}},
		{name: "combined", criteria: Criteria{Status: StatusPending, ProjectID: 1, Search: SearchOptions{Term: "vacaton", Fuzzy: true}}, want: []int64{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleTasks(), tt.criteria, clock, names)
			want := tt.want
			if want == nil {
				want = []int64{}
			}
			assert.Equal(t, want, ids(got))
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus(" Overdue ")
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, status)

	status, err = ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusAll, status)

	_, err = ParseStatus("archived")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestUpcoming(t *testing.T) {
	tasks := []entity.Task{
		{ID: 1, Deadline: at(2024, time.March, 20, 9)},
		{ID: 2, Deadline: at(2024, time.March, 16, 9)},
		{ID: 3, Deadline: at(2024, time.March, 15, 12)},
		{ID: 4, Deadline: at(2024, time.March, 23, 9)},
		{ID: 5, Deadline: at(2024, time.March, 17, 9), Completed: true},
	}

	assert.Equal(t, []int64{2, 1}, ids(Upcoming(tasks, testClock(), 7)))
}
