package main

import (
	"github.com/spf13/cobra"

	"go-taskflow/pkg/log"
	"go-taskflow/pkg/resource"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string
		logLevel   string
		driver     string
	)

	rootCmd := &cobra.Command{
		Use:           "go-taskflow",
		Short:         "Task management API and command line tools",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := resource.LoadFile(configFile); err != nil {
					return err
				}
			}
			if logLevel != "" {
				log.SetLevel(logLevel)
			}
			if driver != "" {
				resource.Set("app.db.driver", driver)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML properties merged over configs/application.yml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "database driver override: memory, sqlite or postgres")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(tasksCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(recurCmd())

	return rootCmd
}
