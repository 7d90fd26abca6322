package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/sync/errgroup"

	"go-taskflow/docs"
	"go-taskflow/internal/application/controller"
	"go-taskflow/internal/application/middleware"
	"go-taskflow/internal/application/processor"
	"go-taskflow/internal/application/schedule"
	"go-taskflow/internal/domain/gateway/event"
	"go-taskflow/internal/infra/aws"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/msg"
	"go-taskflow/pkg/resource"
	"go-taskflow/pkg/sqs"
)

const recurrenceWorkerName = "recurrence"

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API, schedulers and queue worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				resource.Set("app.server.port", port)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port, overrides app.server.port")
	return cmd
}

func runServe(ctx context.Context) error {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	var sqsClient *awssqs.Client
	opts := appOptions{withRedis: true}
	if resource.GetBool("app.cloud.sqs-enabled") {
		settings := aws.SettingsFromProperties()
		cfg, err := aws.LoadConfig(ctx, settings)
		if err != nil {
			return err
		}
		sqsClient = aws.NewSqsClient(cfg, settings)
		opts.queueSender = aws.NewSQSSenderAdapter(sqsClient)
	}

	app, err := newApplication(ctx, opts)
	if err != nil {
		return err
	}
	defer app.close()

	e := newServer(app)
	group, groupCtx := errgroup.WithContext(ctx)

	// Init Workers
	if sqsClient != nil {
		worker, err := sqs.NewWorker(ctx, sqsClient, resource.GetString("app.recurrence.queue"),
			processor.NewRecurrenceProcessor(app.recurrenceUseCase),
			&sqs.WorkerConfig{PoolSize: resource.GetInt("app.cloud.worker-pool-size")})
		if err != nil {
			return err
		}
		app.queueHealth.RegisterWorker(recurrenceWorkerName, worker)
		group.Go(func() error {
			defer app.queueHealth.UnregisterWorker(recurrenceWorkerName)
			worker.Start(groupCtx)
			return nil
		})
	}

	if app.redisClient != nil {
		subscriber, err := event.NewRedisSubscriber(app.redisClient, app.dashboardUseCase.Invalidate)
		if err != nil {
			return err
		}
		defer subscriber.Close()
		group.Go(func() error {
			return subscriber.Start(groupCtx)
		})
	}

	// Init Schedule
	recurrenceScheduler := schedule.NewRecurrenceScheduler(app.recurrenceUseCase, app.redisClient, schedule.RecurrenceSchedulerConfig{
		CronExpression:  resource.GetString("app.recurrence.cron"),
		LockTTL:         resource.GetDuration("app.recurrence.lock-ttl"),
		RefreshInterval: resource.GetDuration("app.recurrence.lock-refresh"),
	})
	if err := recurrenceScheduler.InitRecurrenceScheduleTasks(groupCtx); err != nil {
		return err
	}
	defer recurrenceScheduler.Stop()

	if resource.GetString("app.notification.webhook-url") != "" {
		digestScheduler, err := schedule.NewDigestScheduler(app.notificationUseCase, resource.GetDuration("app.notification.digest-interval"), app.clock)
		if err != nil {
			return err
		}
		if err := digestScheduler.InitDigestScheduleTasks(); err != nil {
			return err
		}
		defer digestScheduler.Stop()
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	group.Go(func() error {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info(msg.GetMessage("app.stopping"))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	err = group.Wait()
	log.Info(msg.GetMessage("app.stopped"))
	return err
}

// newServer builds the echo instance with every route under app.server.context-path
func newServer(app *application) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	api := e.Group(contextPath)
	bulkLimiter := middleware.BulkRateLimiter(app.redisClient, resource.GetInt("app.server.bulk-rate-limit"))

	// Init Controller
	controller.NewHealthController(api, app.healthUseCase).InitHealthRoutes()
	controller.NewTaskController(api, app.taskUseCase, bulkLimiter).InitTaskRoutes()
	controller.NewProjectController(api, app.projectUseCase).InitProjectRoutes()
	controller.NewSubtaskController(api, app.subtaskUseCase).InitSubtaskRoutes()
	controller.NewDashboardController(api, app.dashboardUseCase).InitDashboardRoutes()
	controller.NewRecurrenceController(api, app.recurrenceUseCase).InitRecurrenceRoutes()

	docs.SwaggerInfo.BasePath = contextPath
	docs.SwaggerInfo.Title = resource.GetString("app.name") + " API"
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
