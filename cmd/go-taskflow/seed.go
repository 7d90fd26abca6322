package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

// fixtures is the document read by the seed command
type fixtures struct {
	Projects []projectFixture `yaml:"projects"`
}

type projectFixture struct {
	Name  string        `yaml:"name"`
	Color string        `yaml:"color"`
	Tasks []taskFixture `yaml:"tasks"`
}

type taskFixture struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Priority    string     `yaml:"priority"`
	Deadline    *time.Time `yaml:"deadline"`
	// DueInDays places the deadline relative to today, at 17:00 local time
	DueInDays  *int             `yaml:"dueInDays"`
	Completed  bool             `yaml:"completed"`
	Recurrence *patternFixture  `yaml:"recurrence"`
	Subtasks   []subtaskFixture `yaml:"subtasks"`
}

type patternFixture struct {
	Type           string     `yaml:"type"`
	Interval       int        `yaml:"interval"`
	EndDate        *time.Time `yaml:"endDate"`
	MaxOccurrences int        `yaml:"maxOccurrences"`
	Expression     string     `yaml:"expression"`
}

type subtaskFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Completed   bool   `yaml:"completed"`
}

type seedSummary struct {
	Projects int
	Tasks    int
	Subtasks int
}

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load projects, tasks and subtasks from a YAML fixtures file",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.Open(file)
			if err != nil {
				return err
			}
			defer content.Close()

			data, err := readFixtures(content)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			app, err := newApplication(ctx, appOptions{})
			if err != nil {
				return err
			}
			defer app.close()

			summary, err := seed(ctx, app, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d projects, %d tasks and %d subtasks\n",
				summary.Projects, summary.Tasks, summary.Subtasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "configs/fixtures.yml", "fixtures file")
	return cmd
}

func readFixtures(r io.Reader) (*fixtures, error) {
	var data fixtures
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}
	return &data, nil
}

// seed goes through the use cases, so fixtures get the same defaults and validation as the API
func seed(ctx context.Context, app *application, data *fixtures) (seedSummary, error) {
	var summary seedSummary
	today := app.clock.Now().In(app.location)

	for _, projectData := range data.Projects {
		project, err := app.projectUseCase.Create(ctx, model.CreateProjectDTO{Name: projectData.Name, Color: projectData.Color})
		if err != nil {
			return summary, fmt.Errorf("project %q: %w", projectData.Name, err)
		}
		summary.Projects++

		for _, taskData := range projectData.Tasks {
			tasks, err := seedTask(ctx, app, project.ID, taskData, today)
			if err != nil {
				return summary, fmt.Errorf("task %q: %w", taskData.Title, err)
			}
			summary.Tasks += len(tasks)

			if len(tasks) == 0 {
				continue
			}
			created, err := seedSubtasks(ctx, app, tasks[0].ID, taskData.Subtasks)
			summary.Subtasks += created
			if err != nil {
				return summary, fmt.Errorf("subtasks of %q: %w", taskData.Title, err)
			}
		}
	}
	return summary, nil
}

func seedTask(ctx context.Context, app *application, projectID int64, data taskFixture, today time.Time) ([]entity.Task, error) {
	deadline := data.Deadline
	if data.DueInDays != nil {
		due := time.Date(today.Year(), today.Month(), today.Day()+*data.DueInDays, 17, 0, 0, 0, today.Location())
		deadline = &due
	}

	if data.Recurrence != nil {
		series, err := app.recurrenceUseCase.CreateSeries(ctx, model.CreateSeriesDTO{
			Title:       data.Title,
			Description: data.Description,
			Priority:    data.Priority,
			Deadline:    deadline,
			ProjectID:   projectID,
			Pattern: entity.RecurrencePattern{
				Type:           entity.RecurrenceType(data.Recurrence.Type),
				Interval:       data.Recurrence.Interval,
				EndDate:        data.Recurrence.EndDate,
				MaxOccurrences: data.Recurrence.MaxOccurrences,
				Expression:     data.Recurrence.Expression,
			},
		})
		if err != nil {
			return nil, err
		}
		return series.Tasks, nil
	}

	task, err := app.taskUseCase.Create(ctx, model.CreateTaskDTO{
		Title:       data.Title,
		Description: data.Description,
		Priority:    data.Priority,
		Deadline:    deadline,
		ProjectID:   projectID,
	})
	if err != nil {
		return nil, err
	}
	if data.Completed {
		if task, err = app.taskUseCase.ToggleComplete(ctx, task.ID); err != nil {
			return nil, err
		}
	}
	return []entity.Task{*task}, nil
}

func seedSubtasks(ctx context.Context, app *application, taskID int64, data []subtaskFixture) (int, error) {
	var completed []int64
	for i, subtaskData := range data {
		subtask, err := app.subtaskUseCase.Create(ctx, model.CreateSubtaskDTO{
			Name:        subtaskData.Name,
			Description: subtaskData.Description,
			TaskID:      taskID,
		})
		if err != nil {
			return i, err
		}
		if subtaskData.Completed {
			completed = append(completed, subtask.ID)
		}
	}

	if len(completed) > 0 {
		if _, err := app.subtaskUseCase.BulkComplete(ctx, completed); err != nil {
			return len(data), err
		}
	}
	return len(data), nil
}
