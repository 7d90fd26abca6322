package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var (
		overview bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the task statistics, or the whole dashboard with --overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApplication(ctx, appOptions{withRedis: true})
			if err != nil {
				return err
			}
			defer app.close()
			return runStats(ctx, app, cmd.OutOrStdout(), overview, output)
		},
	}

	cmd.Flags().BoolVar(&overview, "overview", false, "include projects, upcoming and overdue tasks")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "json or yaml")
	return cmd
}

func runStats(ctx context.Context, app *application, w io.Writer, overview bool, output string) error {
	if output == outputTable {
		return fmt.Errorf("stats supports json or yaml output")
	}
	if overview {
		dashboard, err := app.dashboardUseCase.Overview(ctx)
		if err != nil {
			return err
		}
		return writeValue(w, output, dashboard)
	}

	stats, err := app.dashboardUseCase.Stats(ctx)
	if err != nil {
		return err
	}
	return writeValue(w, output, stats)
}
