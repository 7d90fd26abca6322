package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"go-taskflow/internal/domain/filter"
	"go-taskflow/internal/domain/gateway/api"
	"go-taskflow/internal/domain/gateway/db"
	"go-taskflow/internal/domain/model"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/msg"
)

type notificationUseCase struct {
	gateway  api.NotificationGateway
	tasks    db.TaskGateway
	clock    clockwork.Clock
	location *time.Location
}

// NewNotificationUseCase builds the digest sender. A nil gateway means no webhook is configured.
func NewNotificationUseCase(gateway api.NotificationGateway, tasks db.TaskGateway, clock clockwork.Clock, location *time.Location) UseCase {
	return &notificationUseCase{
		gateway:  gateway,
		tasks:    tasks,
		clock:    clock,
		location: location,
	}
}

func (uc *notificationUseCase) SendOverdueDigest(ctx context.Context) (*model.OverdueDigest, error) {
	if uc.gateway == nil {
		log.Debug(msg.GetMessage("notification.digest.skipped", "no webhook configured"))
		return nil, nil
	}

	tasks, err := uc.tasks.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	clock := filter.Clock{Now: uc.clock.Now(), Location: uc.location}
	overdue := filter.Overdue(tasks, clock)
	if len(overdue) == 0 {
		log.Debug(msg.GetMessage("notification.digest.skipped", "no overdue tasks"))
		return nil, nil
	}
	filter.SortByDeadline(overdue)

	digest := model.OverdueDigest{
		GeneratedAt: clock.Now.UTC(),
		Count:       len(overdue),
		Tasks:       make([]model.OverdueDigestItem, 0, len(overdue)),
	}
	for _, task := range overdue {
		digest.Tasks = append(digest.Tasks, model.OverdueDigestItem{
			ID:       task.ID,
			Title:    task.Title,
			Priority: string(task.Priority),
			Deadline: task.Deadline,
			Relative: clock.RelativeLabel(task.Deadline),
		})
	}

	if err := uc.gateway.SendOverdueDigest(ctx, digest); err != nil {
		log.Error(msg.GetMessage("notification.digest.failed", err))
		return nil, err
	}
	log.Info(msg.GetMessage("notification.digest.sent", digest.Count))
	return &digest, nil
}
