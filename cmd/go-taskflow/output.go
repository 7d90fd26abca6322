package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/filter"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// writeValue renders value as JSON or YAML
func writeValue(w io.Writer, format string, value any) error {
	switch format {
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(value)
	default:
		return fmt.Errorf("unknown output format %q, expected table, json or yaml", format)
	}
}

func writeTaskTable(w io.Writer, tasks []entity.Task, projects map[int64]string, clock filter.Clock) error {
	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "ID\tDONE\tPRIORITY\tDEADLINE\tPROJECT\tTITLE")
	for _, task := range tasks {
		done := " "
		if task.Completed {
			done = "x"
		}
		deadline := "-"
		if task.HasDeadline() {
			deadline = clock.RelativeLabel(task.Deadline)
		}
		project := projects[task.ProjectID]
		if project == "" {
			project = "-"
		}
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\t%s\n", task.ID, done, task.Priority, deadline, project, task.Title)
	}
	return table.Flush()
}

func writeDates(w io.Writer, dates []time.Time) {
	for i, date := range dates {
		fmt.Fprintf(w, "%2d  %s\n", i+1, date.Format("Mon 2006-01-02 15:04 MST"))
	}
}
