package schedule

import (
	"context"
	"errors"
	"time"

	"go-taskflow/internal/domain/usecase/recurrence"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/msg"
	"go-taskflow/pkg/redis"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RecurrenceSchedulerConfig holds configuration for the recurrence scheduler
type RecurrenceSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// RecurrenceScheduler periodically extends every recurring series up to the horizon.
// With a redis client only the instance holding the scheduler lock runs the cron.
type RecurrenceScheduler struct {
	cron        *cron.Cron
	useCase     recurrence.UseCase
	redisClient *redis.Client
	config      *RecurrenceSchedulerConfig
}

func NewRecurrenceScheduler(useCase recurrence.UseCase, redisClient *redis.Client, config RecurrenceSchedulerConfig) *RecurrenceScheduler {
	return &RecurrenceScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      &config,
	}
}

// InitRecurrenceScheduleTasks registers the extension job and starts the cron in the background
func (s *RecurrenceScheduler) InitRecurrenceScheduleTasks(ctx context.Context) error {
	if _, err := cron.ParseStandard(s.config.CronExpression); err != nil {
		log.Error(msg.GetMessage("recurrence.cron.invalid", s.config.CronExpression, err.Error()))
		return err
	}

	if s.redisClient == nil {
		return s.start()
	}

	go func() {
		lock := redis.NewScheduledTaskLock(
			s.redisClient,
			"recurrence_scheduler",
			s.getLockTTL(),
			s.getRefreshInterval(),
			"recurrence_schedules",
		)

		if err := lock.Lock(ctx); err != nil {
			log.Warn(msg.GetMessage("recurrence.cron.lock-failed", err.Error()))
			return
		}

		refreshErrChan := lock.AutoRefresh(ctx)

		if err := s.start(); err != nil {
			_ = lock.Unlock(context.Background())
			return
		}

		err := <-refreshErrChan
		s.Stop()

		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error(msg.GetMessage("recurrence.cron.refresh-failed", err.Error()))
			return
		}
		_ = lock.Unlock(context.Background())
	}()

	return nil
}

func (s *RecurrenceScheduler) start() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		log.Error(msg.GetMessage("recurrence.cron.invalid", s.config.CronExpression, err.Error()))
		return err
	}
	s.cron.Start()
	log.Info(msg.GetMessage("recurrence.cron.scheduled", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask extends all series, logging under a fresh request id
func (s *RecurrenceScheduler) ExecuteScheduledTask() {
	s.execute(context.Background(), uuid.New().String())
}

func (s *RecurrenceScheduler) execute(ctx context.Context, requestID string) {
	log.Info(msg.GetMessage("recurrence.cron.start", requestID), zap.String("request_id", requestID))

	count, err := s.useCase.ExtendAll(ctx, requestID)
	if err != nil {
		log.Error(msg.GetMessage("recurrence.cron.failed", requestID, err.Error()), zap.String("request_id", requestID))
		return
	}

	log.Info(msg.GetMessage("recurrence.cron.end", requestID, count), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler, waiting for a running job to finish
func (s *RecurrenceScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		log.Info(msg.GetMessage("recurrence.cron.stopped"))
	}
}

func (s *RecurrenceScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *RecurrenceScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return time.Minute
}
