package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{1, 4, 25},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompletionRate(tt.completed, tt.total))
	}
}

func TestStats(t *testing.T) {
	stats := Stats(sampleTasks(), testClock())

	assert.Equal(t, model.TaskStats{
		Total:          4,
		Completed:      1,
		Pending:        3,
		Overdue:        1,
		Today:          1,
		CompletedToday: 1,
		CompletionRate: 25,
	}, stats)
}

func TestStats_Empty(t *testing.T) {
	assert.Equal(t, model.TaskStats{}, Stats(nil, testClock()))
}

func TestProjectProgress(t *testing.T) {
	projects := []entity.Project{
		{ID: 1, Name: "Work", Color: "#111111"},
		{ID: 2, Name: "Personal", Color: "#222222"},
		{ID: 3, Name: "Empty", Color: "#333333"},
	}

	progress := ProjectProgress(projects, sampleTasks())
	require.Len(t, progress, 3)

	assert.Equal(t, model.ProjectProgress{ProjectID: 1, Name: "Work", Color: "#111111", Total: 2, Completed: 1, CompletionRate: 50}, progress[0])
	assert.Equal(t, model.ProjectProgress{ProjectID: 2, Name: "Personal", Color: "#222222", Total: 2, Completed: 0, CompletionRate: 0}, progress[1])
	assert.Equal(t, model.ProjectProgress{ProjectID: 3, Name: "Empty", Color: "#333333"}, progress[2])
}

func TestGroupByProject(t *testing.T) {
	projects := []entity.Project{{ID: 1, Name: "Work"}, {ID: 3, Name: "Empty"}}

	groups := GroupByProject(projects, sampleTasks())
	require.Len(t, groups, 2)

	assert.Equal(t, 2, groups[0].TaskCount)
	assert.Equal(t, []int64{1, 4}, ids(groups[0].Tasks))
	assert.Equal(t, 0, groups[1].TaskCount)
	assert.Empty(t, groups[1].Tasks)
	assert.NotNil(t, groups[1].Tasks)
}

func TestCountByProject(t *testing.T) {
	assert.Equal(t, map[int64]int{1: 2, 2: 2}, CountByProject(sampleTasks()))
}
