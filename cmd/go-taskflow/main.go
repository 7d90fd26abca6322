package main

import (
	"fmt"
	"os"

	_ "go-taskflow/configs"
	"go-taskflow/pkg/log"
)

var Version = "dev"

// @title go-taskflow API
// @version 1.0
// @description Task, project and subtask management with search, recurrence, calendar and dashboard.
// @BasePath /go-taskflow
func main() {
	defer log.Sync()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
