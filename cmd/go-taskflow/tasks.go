package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"go-taskflow/internal/domain/filter"
	"go-taskflow/internal/domain/model"
)

type listOptions struct {
	query  model.TaskQuery
	output string
}

func tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Query and update tasks",
	}
	cmd.AddCommand(tasksListCmd())
	cmd.AddCommand(tasksCompleteCmd())
	return cmd
}

func tasksListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks with the same filters as GET /tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApplication(ctx, appOptions{withRedis: true})
			if err != nil {
				return err
			}
			defer app.close()
			return runTasksList(ctx, app, cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.query.Status, "status", "", "all, pending, completed, overdue or today")
	flags.StringVar(&opts.query.Priority, "priority", "", "low, medium or high")
	flags.Int64Var(&opts.query.ProjectID, "project", 0, "project id")
	flags.StringVarP(&opts.query.Search, "query", "q", "", "search term")
	flags.StringSliceVar(&opts.query.Fields, "fields", nil, "search fields: title, description, project")
	flags.BoolVar(&opts.query.Fuzzy, "fuzzy", false, "fuzzy matching")
	flags.Float64Var(&opts.query.Threshold, "threshold", 0, "fuzzy similarity threshold (0.3 to 0.9)")
	flags.StringVar(&opts.query.Sort, "sort", "", "priority, deadline or created")
	flags.IntVar(&opts.query.Page, "page", 0, "page number")
	flags.IntVar(&opts.query.Size, "size", 0, "page size, 0 lists every match")
	flags.StringVarP(&opts.output, "output", "o", outputTable, "table, json or yaml")
	return cmd
}

func runTasksList(ctx context.Context, app *application, w io.Writer, opts listOptions) error {
	page, err := app.taskUseCase.FindAll(ctx, opts.query)
	if err != nil {
		return err
	}
	if opts.output != outputTable {
		return writeValue(w, opts.output, page)
	}

	projects, err := app.projectUseCase.FindAll(ctx)
	if err != nil {
		return err
	}
	clock := filter.Clock{Now: app.clock.Now(), Location: app.location}
	if err := writeTaskTable(w, page.Content, filter.ProjectNames(projects), clock); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nPage %d of %d, %d tasks\n", page.Number+1, max(page.TotalPages, 1), page.TotalElements)
	return nil
}

func tasksCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>...",
		Short: "Mark tasks as completed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid task id %q", arg)
				}
				ids = append(ids, id)
			}

			ctx := cmd.Context()
			app, err := newApplication(ctx, appOptions{withRedis: true})
			if err != nil {
				return err
			}
			defer app.close()

			result, err := app.taskUseCase.BulkComplete(ctx, ids)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %d tasks\n", len(result.Tasks))
			return nil
		},
	}
}
