package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"go-taskflow/internal/domain/gateway/api"
	"go-taskflow/internal/domain/gateway/cache"
	"go-taskflow/internal/domain/gateway/db"
	"go-taskflow/internal/domain/gateway/event"
	"go-taskflow/internal/domain/gateway/queue"
	"go-taskflow/internal/domain/usecase/dashboard"
	"go-taskflow/internal/domain/usecase/health"
	"go-taskflow/internal/domain/usecase/notification"
	"go-taskflow/internal/domain/usecase/project"
	"go-taskflow/internal/domain/usecase/recurrence"
	"go-taskflow/internal/domain/usecase/subtask"
	"go-taskflow/internal/domain/usecase/task"
	"go-taskflow/internal/infra/database"
	"go-taskflow/pkg/http"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/redis"
	"go-taskflow/pkg/resource"
)

// application holds the gateways and use cases shared by every command
type application struct {
	clock    clockwork.Clock
	location *time.Location

	conn        *database.Connection
	redisClient *redis.Client
	queueSender queue.Sender

	tasks       db.TaskGateway
	projects    db.ProjectGateway
	subtasks    db.SubtaskGateway
	dbHealth    db.HealthDBGateway
	cache       cache.Gateway
	cacheHealth cache.HealthGateway
	queueHealth *queue.QueueHealthGateway
	publisher   event.Publisher

	taskUseCase         task.UseCase
	projectUseCase      project.UseCase
	subtaskUseCase      subtask.UseCase
	recurrenceUseCase   recurrence.UseCase
	dashboardUseCase    dashboard.UseCase
	notificationUseCase notification.UseCase
	healthUseCase       health.UseCase
}

// appOptions lets commands opt out of infrastructure they do not need
type appOptions struct {
	// withRedis connects to redis when app.redis.enabled is set
	withRedis bool
	// queueSender is used by ExtendAll, nil extends inline
	queueSender queue.Sender
}

func newApplication(ctx context.Context, opts appOptions) (*application, error) {
	location, err := time.LoadLocation(resource.GetString("app.timezone"))
	if err != nil {
		return nil, fmt.Errorf("invalid app.timezone: %w", err)
	}

	app := &application{
		clock:       clockwork.NewRealClock(),
		location:    location,
		queueSender: opts.queueSender,
		queueHealth: queue.NewQueueHealthGateway(),
	}

	dbConfig := database.ConfigFromProperties()
	app.conn, err = database.Connect(ctx, dbConfig)
	if err != nil {
		return nil, err
	}
	if dbConfig.AutoMigrate {
		if err := app.conn.Migrate(ctx); err != nil {
			_ = app.conn.Close()
			return nil, err
		}
	}
	app.initGateways()

	if opts.withRedis && resource.GetBool("app.redis.enabled") {
		if err := app.initRedis(ctx); err != nil {
			_ = app.conn.Close()
			return nil, err
		}
	} else {
		app.cache = cache.NewMemoryCacheGateway(resource.GetDuration("app.redis.cache-ttl"), app.clock)
		app.cacheHealth = cache.DisabledHealthGateway{}
		app.publisher = event.NewLocalPublisher()
	}

	app.initUseCases()
	return app, nil
}

func (app *application) initGateways() {
	switch app.conn.Driver {
	case database.DriverPostgres:
		app.tasks = db.NewSQLCTaskGateway(app.conn.SQL)
		app.projects = db.NewSQLCProjectGateway(app.conn.SQL)
		app.subtasks = db.NewSQLCSubtaskGateway(app.conn.SQL)
		app.dbHealth = db.NewGormHealthDBGateway(app.conn.Gorm)
	case database.DriverSQLite:
		app.tasks = db.NewSQLCTaskGateway(app.conn.SQL)
		app.projects = db.NewSQLCProjectGateway(app.conn.SQL)
		app.subtasks = db.NewSQLCSubtaskGateway(app.conn.SQL)
		app.dbHealth = db.NewSQLCHealthDBGateway(app.conn.SQL, database.DriverSQLite)
	default:
		tasks := db.NewMemoryTaskGateway()
		app.tasks = tasks
		app.projects = db.NewMemoryProjectGateway(tasks)
		app.subtasks = db.NewMemorySubtaskGateway()
		app.dbHealth = db.MemoryHealthDBGateway{}
	}
}

func (app *application) initRedis(ctx context.Context) error {
	config := redis.DefaultConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithNamespace(resource.GetString("app.redis.namespace")).
		WithDefaultCacheTTL(resource.GetDuration("app.redis.cache-ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		return err
	}
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to redis at %s: %w", config.Addr(), err)
	}

	app.redisClient = client
	app.cache = cache.NewRedisCacheGateway(client, "dashboard", config.DefaultCacheTTL)
	app.cacheHealth = cache.NewRedisHealthGateway(client)
	app.publisher = event.NewRedisPublisher(client)
	return nil
}

func (app *application) initUseCases() {
	app.taskUseCase = task.NewTaskUseCase(app.tasks, app.projects, app.subtasks, app.publisher, app.clock, app.location)
	app.projectUseCase = project.NewProjectUseCase(app.projects, app.tasks, app.publisher, app.clock)
	app.subtaskUseCase = subtask.NewSubtaskUseCase(app.subtasks, app.tasks, app.publisher, app.clock)
	app.recurrenceUseCase = recurrence.NewRecurrenceUseCase(
		resource.GetDuration("app.recurrence.horizon"),
		resource.GetString("app.recurrence.queue"),
		app.queueSender,
		app.tasks,
		app.projects,
		app.publisher,
		app.clock,
	)
	app.dashboardUseCase = dashboard.NewDashboardUseCase(app.tasks, app.projects, app.cache, app.clock, app.location)
	app.notificationUseCase = notification.NewNotificationUseCase(app.notificationGateway(), app.tasks, app.clock, app.location)
	app.healthUseCase = health.NewHealthUseCase(app.dbHealth, app.cacheHealth, app.queueHealth)

	// a local publisher delivers events in process, redis events arrive through the subscriber
	if local, ok := app.publisher.(*event.LocalPublisher); ok {
		local.Subscribe(app.dashboardUseCase.Invalidate)
	}
}

// notificationGateway returns nil when no webhook is configured, disabling the digest
func (app *application) notificationGateway() api.NotificationGateway {
	webhookURL := resource.GetString("app.notification.webhook-url")
	if webhookURL == "" {
		return nil
	}

	backoff := http.DefaultBackoffConfig()
	backoff.MaxRetries = resource.GetInt("app.notification.max-retries")
	gateway, err := api.NewWebhookNotificationGateway(webhookURL, http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.notification.timeout"),
		ReadTimeout:       resource.GetDuration("app.notification.timeout"),
		Backoff:           backoff,
		Logger:            http.ZapLogger{},
	})
	if err != nil {
		log.Warnf("Overdue digest disabled: %v", err)
		return nil
	}
	return gateway
}

func (app *application) close() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			log.Warnf("Failed to close redis client: %v", err)
		}
	}
	if err := app.conn.Close(); err != nil {
		log.Warnf("Failed to close database: %v", err)
	}
}
