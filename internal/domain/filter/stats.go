package filter

import (
	"math"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

// CompletionRate is completed/total as a rounded percentage, 0 for an empty total
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Stats summarizes a task list for the dashboard
func Stats(tasks []entity.Task, clock Clock) model.TaskStats {
	stats := model.TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
		if clock.IsOverdue(task) {
			stats.Overdue++
		}
		if clock.IsDueToday(task) {
			stats.Today++
		}
		if clock.CompletedToday(task) {
			stats.CompletedToday++
		}
	}
	stats.CompletionRate = CompletionRate(stats.Completed, stats.Total)
	return stats
}

// ProjectProgress computes the completion of every project, in project order
func ProjectProgress(projects []entity.Project, tasks []entity.Task) []model.ProjectProgress {
	type counter struct{ total, completed int }
	counts := make(map[int64]*counter, len(projects))
	for _, task := range tasks {
		c, ok := counts[task.ProjectID]
		if !ok {
			c = &counter{}
			counts[task.ProjectID] = c
		}
		c.total++
		if task.Completed {
			c.completed++
		}
	}

	progress := make([]model.ProjectProgress, 0, len(projects))
	for _, project := range projects {
		p := model.ProjectProgress{ProjectID: project.ID, Name: project.Name, Color: project.Color}
		if c, ok := counts[project.ID]; ok {
			p.Total = c.total
			p.Completed = c.completed
		}
		p.CompletionRate = CompletionRate(p.Completed, p.Total)
		progress = append(progress, p)
	}
	return progress
}

// CountByProject returns the number of tasks per project id
func CountByProject(tasks []entity.Task) map[int64]int {
	counts := make(map[int64]int)
	for _, task := range tasks {
		counts[task.ProjectID]++
	}
	return counts
}

// GroupByProject pairs each project with its tasks; tasks of unknown projects are dropped
func GroupByProject(projects []entity.Project, tasks []entity.Task) []model.ProjectTasks {
	byProject := make(map[int64][]entity.Task)
	for _, task := range tasks {
		byProject[task.ProjectID] = append(byProject[task.ProjectID], task)
	}

	groups := make([]model.ProjectTasks, 0, len(projects))
	for _, project := range projects {
		projectTasks := byProject[project.ID]
		if projectTasks == nil {
			projectTasks = []entity.Task{}
		}
		project.TaskCount = len(projectTasks)
		groups = append(groups, model.ProjectTasks{Project: project, Tasks: projectTasks})
	}
	return groups
}

// ProjectNames indexes project names by id for the project search field
func ProjectNames(projects []entity.Project) map[int64]string {
	names := make(map[int64]string, len(projects))
	for _, project := range projects {
		names[project.ID] = project.Name
	}
	return names
}
