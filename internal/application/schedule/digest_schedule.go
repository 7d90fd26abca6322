package schedule

import (
	"context"
	"fmt"
	"time"

	"go-taskflow/internal/domain/usecase/notification"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/msg"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
)

// DigestScheduler posts the overdue digest on a fixed interval
type DigestScheduler struct {
	scheduler gocron.Scheduler
	useCase   notification.UseCase
	interval  time.Duration
}

func NewDigestScheduler(useCase notification.UseCase, interval time.Duration, clock clockwork.Clock) (*DigestScheduler, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("failed to create digest scheduler: %w", err)
	}
	return &DigestScheduler{
		scheduler: scheduler,
		useCase:   useCase,
		interval:  interval,
	}, nil
}

// InitDigestScheduleTasks registers the digest job and starts the scheduler (non-blocking)
func (s *DigestScheduler) InitDigestScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.ExecuteScheduledTask),
		gocron.WithName("overdue_digest"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule overdue digest: %w", err)
	}

	s.scheduler.Start()
	log.Info(msg.GetMessage("notification.digest.scheduled", s.interval.String()))
	return nil
}

// ExecuteScheduledTask sends one digest
func (s *DigestScheduler) ExecuteScheduledTask(ctx context.Context) {
	digest, err := s.useCase.SendOverdueDigest(ctx)
	if err != nil {
		// the use case already logged the failure
		return
	}
	if digest == nil {
		log.Debug(msg.GetMessage("notification.digest.skipped", "nothing to send"))
	}
}

func (s *DigestScheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Warnf("Digest scheduler shutdown: %v", err)
		return
	}
	log.Info(msg.GetMessage("notification.digest.stopped"))
}
