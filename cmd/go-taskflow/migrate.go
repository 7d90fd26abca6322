package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-taskflow/internal/infra/database"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema of the configured driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conn, err := database.Connect(ctx, database.ConfigFromProperties())
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := conn.Migrate(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema ready for driver %s\n", conn.Driver)
			return nil
		},
	}
}
