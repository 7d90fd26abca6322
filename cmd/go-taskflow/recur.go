package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

func recurCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recur",
		Short: "Recurring series tools",
	}
	cmd.AddCommand(recurPreviewCmd())
	cmd.AddCommand(recurExtendCmd())
	return cmd
}

func recurPreviewCmd() *cobra.Command {
	var (
		pattern entity.RecurrencePattern
		kind    string
		start   string
		until   string
		count   int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the next occurrence dates of a pattern",
		Example: `  go-taskflow recur preview --type weekly --interval 2 --start 2024-03-15T09:00:00Z
  go-taskflow recur preview --type cron --cron "0 9 * * MON-FRI" --count 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern.Type = entity.RecurrenceType(kind)

			dto := model.PreviewDTO{Pattern: pattern, Count: count}
			if start != "" {
				parsed, err := time.Parse(time.RFC3339, start)
				if err != nil {
					return fmt.Errorf("invalid --start, expected RFC 3339: %w", err)
				}
				dto.Start = parsed
			}
			if until != "" {
				parsed, err := time.Parse(time.RFC3339, until)
				if err != nil {
					return fmt.Errorf("invalid --until, expected RFC 3339: %w", err)
				}
				dto.Pattern.EndDate = &parsed
			}

			app, err := newApplication(cmd.Context(), appOptions{})
			if err != nil {
				return err
			}
			defer app.close()

			dates, err := app.recurrenceUseCase.Preview(dto)
			if err != nil {
				return err
			}
			writeDates(cmd.OutOrStdout(), dates)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&kind, "type", string(entity.RecurrenceDaily), "daily, weekly, monthly, yearly or cron")
	flags.IntVar(&pattern.Interval, "interval", 1, "step between occurrences")
	flags.StringVar(&pattern.Expression, "cron", "", "cron expression for --type cron")
	flags.IntVar(&pattern.MaxOccurrences, "max", 0, "maximum occurrences, 0 is unbounded")
	flags.StringVar(&start, "start", "", "first occurrence (RFC 3339), defaults to now")
	flags.StringVar(&until, "until", "", "end date (RFC 3339)")
	flags.IntVarP(&count, "count", "n", 10, "number of dates")
	return cmd
}

func recurExtendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extend",
		Short: "Extend every recurring series up to the horizon, as the scheduled job does",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApplication(ctx, appOptions{withRedis: true})
			if err != nil {
				return err
			}
			defer app.close()

			count, err := app.recurrenceUseCase.ExtendAll(ctx, uuid.New().String())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Extended %d series\n", count)
			return nil
		},
	}
}
