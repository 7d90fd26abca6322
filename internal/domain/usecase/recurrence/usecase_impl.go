package recurrence

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/gateway/db"
	"go-taskflow/internal/domain/gateway/event"
	"go-taskflow/internal/domain/gateway/queue"
	"go-taskflow/internal/domain/model"
	"go-taskflow/internal/domain/recurrence"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/msg"
)

const (
	defaultPreviewCount = 10
	// SQS accepts at most 10 entries per batch
	enqueueBatchSize = 10
)

type recurrenceUseCase struct {
	horizon     time.Duration
	queueName   string
	queueSender queue.Sender
	tasks       db.TaskGateway
	projects    db.ProjectGateway
	publisher   event.Publisher
	clock       clockwork.Clock
}

// NewRecurrenceUseCase builds the series use case. queueSender may be nil, ExtendAll then
// extends every series inline instead of enqueuing them.
func NewRecurrenceUseCase(
	horizon time.Duration,
	queueName string,
	queueSender queue.Sender,
	tasks db.TaskGateway,
	projects db.ProjectGateway,
	publisher event.Publisher,
	clock clockwork.Clock,
) UseCase {
	return &recurrenceUseCase{
		horizon:     horizon,
		queueName:   queueName,
		queueSender: queueSender,
		tasks:       tasks,
		projects:    projects,
		publisher:   publisher,
		clock:       clock,
	}
}

// CreateSeries stores every occurrence of the pattern from the first deadline up to the horizon
func (uc *recurrenceUseCase) CreateSeries(ctx context.Context, dto model.CreateSeriesDTO) (*model.SeriesDTO, error) {
	template, err := uc.template(ctx, dto)
	if err != nil {
		return nil, err
	}

	start := *dto.Deadline
	until := uc.clock.Now().Add(uc.horizon)
	if until.Before(start) {
		until = start
	}
	dates, err := recurrence.Generate(dto.Pattern, start, recurrence.Bounds{Until: until})
	if err != nil {
		return nil, err
	}

	recurringID := uuid.NewString()
	template.CreatedAt = uc.clock.Now().UTC()
	created, err := uc.tasks.CreateBatch(ctx, instances(template, recurringID, dates))
	if err != nil {
		return nil, fmt.Errorf("failed to create recurring series: %w", err)
	}

	log.Info(msg.GetMessage("recurrence.created", recurringID, len(created)))
	event.Emit(ctx, uc.publisher, model.EventSeriesChanged, uc.clock.Now(), taskIDs(created)...)
	return &model.SeriesDTO{RecurringID: recurringID, Tasks: created}, nil
}

// template validates the request and returns the task every occurrence is copied from
func (uc *recurrenceUseCase) template(ctx context.Context, dto model.CreateSeriesDTO) (entity.Task, error) {
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return entity.Task{}, model.Invalid("task.error.title-required")
	}
	if dto.Deadline == nil {
		return entity.Task{}, model.Invalid("recurrence.error.deadline-required")
	}
	if err := recurrence.Validate(dto.Pattern); err != nil {
		return entity.Task{}, err
	}

	priority := entity.PriorityMedium
	if strings.TrimSpace(dto.Priority) != "" {
		priority = entity.ParsePriority(dto.Priority)
		if !priority.IsValid() {
			return entity.Task{}, model.Invalid("task.error.invalid-priority", dto.Priority)
		}
	}

	if dto.ProjectID == 0 {
		return entity.Task{}, model.Invalid("task.error.project-required")
	}
	project, err := uc.projects.FindByID(ctx, dto.ProjectID)
	if err != nil {
		return entity.Task{}, err
	}
	if project == nil {
		return entity.Task{}, model.Invalid("task.error.project-not-found", dto.ProjectID)
	}

	pattern := dto.Pattern
	start := *dto.Deadline
	pattern.Start = &start
	return entity.Task{
		Title:             title,
		Description:       dto.Description,
		Priority:          priority,
		ProjectID:         dto.ProjectID,
		IsRecurring:       true,
		RecurrencePattern: &pattern,
	}, nil
}

func (uc *recurrenceUseCase) Preview(dto model.PreviewDTO) ([]time.Time, error) {
	count := dto.Count
	if count <= 0 {
		count = defaultPreviewCount
	}
	start := dto.Start
	if start.IsZero() {
		start = uc.clock.Now()
	}
	return recurrence.Generate(dto.Pattern, start, recurrence.Bounds{Max: count})
}

// ExtendSeries tops a series up to the horizon. Occurrences are generated from the pattern
// start, so deleting the first instances does not move the anchor, and only those after the
// latest stored one are created. Series stored without a start fall back to their earliest deadline.
func (uc *recurrenceUseCase) ExtendSeries(ctx context.Context, recurringID string, requestID string) (*model.SeriesDTO, error) {
	series, err := uc.series(ctx, recurringID)
	if err != nil {
		return nil, err
	}

	first, last := series[0], series[len(series)-1]
	if last.RecurrencePattern == nil {
		return &model.SeriesDTO{RecurringID: recurringID, Tasks: []entity.Task{}}, nil
	}

	anchor := *first.Deadline
	if last.RecurrencePattern.Start != nil {
		anchor = *last.RecurrencePattern.Start
	}
	dates, err := recurrence.GenerateAfter(*last.RecurrencePattern, anchor, *last.Deadline,
		recurrence.Bounds{Until: uc.clock.Now().Add(uc.horizon)})
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return &model.SeriesDTO{RecurringID: recurringID, Tasks: []entity.Task{}}, nil
	}

	template := last
	template.ID = 0
	template.Subtasks = nil
	template.CreatedAt = uc.clock.Now().UTC()
	created, err := uc.tasks.CreateBatch(ctx, instances(template, recurringID, dates))
	if err != nil {
		return nil, fmt.Errorf("failed to extend recurring series %s: %w", recurringID, err)
	}

	log.Info(msg.GetMessage("recurrence.extended", recurringID, len(created), requestID))
	event.Emit(ctx, uc.publisher, model.EventSeriesChanged, uc.clock.Now(), taskIDs(created)...)
	return &model.SeriesDTO{RecurringID: recurringID, Tasks: created}, nil
}

// ExtendAll extends every known series, through the queue when a sender is configured.
// It returns the number of series handled.
func (uc *recurrenceUseCase) ExtendAll(ctx context.Context, requestID string) (int, error) {
	tasks, err := uc.tasks.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	recurringIDs := distinctSeries(tasks)

	if uc.queueSender != nil && uc.queueName != "" {
		return len(recurringIDs), uc.enqueue(ctx, recurringIDs, requestID)
	}

	var errs []error
	for _, recurringID := range recurringIDs {
		if _, err := uc.ExtendSeries(ctx, recurringID, requestID); err != nil {
			log.Warn("Failed to extend recurring series",
				zap.String("request_id", requestID),
				zap.String("recurring_id", recurringID),
				zap.Error(err))
			errs = append(errs, err)
		}
	}
	return len(recurringIDs), errors.Join(errs...)
}

func (uc *recurrenceUseCase) enqueue(ctx context.Context, recurringIDs []string, requestID string) error {
	var errs []error
	for batch := range slices.Chunk(recurringIDs, enqueueBatchSize) {
		messages := make([]queue.BatchMessage, len(batch))
		for i, recurringID := range batch {
			messages[i] = queue.BatchMessage{
				MessageID: recurringID,
				Body:      model.ExtendSeriesMessage{RecurringID: recurringID, RequestID: requestID},
			}
		}

		result, err := uc.queueSender.SendMessageBatch(ctx, uc.queueName, messages)
		if err != nil {
			log.Warn("Failed to send batch", zap.String("request_id", requestID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		for _, recurringID := range result.Successful {
			log.Debug(msg.GetMessage("recurrence.cron.enqueued", recurringID, uc.queueName, requestID))
		}
		for _, recurringID := range result.Failed {
			log.Warn("Failed to enqueue recurring series",
				zap.String("request_id", requestID),
				zap.String("recurring_id", recurringID))
		}
		if len(result.Failed) > 0 {
			errs = append(errs, fmt.Errorf("failed to enqueue %d recurring series", len(result.Failed)))
		}
	}
	return errors.Join(errs...)
}

// StopSeries removes the pending occurrences due after now and closes the pattern of the
// remaining ones so later extensions generate nothing
func (uc *recurrenceUseCase) StopSeries(ctx context.Context, recurringID string) (*model.StopSeriesDTO, error) {
	series, err := uc.series(ctx, recurringID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	pending := make([]int64, 0)
	kept := make([]entity.Task, 0, len(series))
	for _, task := range series {
		if !task.Completed && task.Deadline.After(now) {
			pending = append(pending, task.ID)
			continue
		}
		if task.RecurrencePattern != nil {
			pattern := *task.RecurrencePattern
			end := now.UTC()
			pattern.EndDate = &end
			task.RecurrencePattern = &pattern
		}
		kept = append(kept, task)
	}

	deleted, err := uc.tasks.DeleteBatch(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("failed to delete pending occurrences of %s: %w", recurringID, err)
	}
	if len(kept) > 0 {
		if _, err := uc.tasks.UpdateBatch(ctx, kept); err != nil {
			return nil, fmt.Errorf("failed to close recurring series %s: %w", recurringID, err)
		}
	}

	log.Info(msg.GetMessage("recurrence.stopped", recurringID, deleted))
	event.Emit(ctx, uc.publisher, model.EventSeriesChanged, now, append(pending, taskIDs(kept)...)...)
	return &model.StopSeriesDTO{RecurringID: recurringID, DeletedCount: deleted}, nil
}

// series returns the occurrences of a series that have a deadline, earliest first
func (uc *recurrenceUseCase) series(ctx context.Context, recurringID string) ([]entity.Task, error) {
	tasks, err := uc.tasks.FindByRecurringID(ctx, recurringID)
	if err != nil {
		return nil, err
	}

	series := make([]entity.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.HasDeadline() {
			series = append(series, task)
		}
	}
	if len(series) == 0 {
		return nil, model.NotFound("recurrence.error.series-not-found", recurringID)
	}
	slices.SortStableFunc(series, func(a, b entity.Task) int {
		return a.Deadline.Compare(*b.Deadline)
	})
	return series, nil
}

func instances(template entity.Task, recurringID string, dates []time.Time) []entity.Task {
	tasks := make([]entity.Task, len(dates))
	for i, date := range dates {
		task := template
		deadline := date
		task.Deadline = &deadline
		task.RecurringID = recurringID
		task.IsRecurring = true
		task.Completed = false
		task.CompletedAt = nil
		tasks[i] = task
	}
	return tasks
}

func distinctSeries(tasks []entity.Task) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, task := range tasks {
		if !task.IsRecurring || task.RecurringID == "" {
			continue
		}
		if _, ok := seen[task.RecurringID]; ok {
			continue
		}
		seen[task.RecurringID] = struct{}{}
		ids = append(ids, task.RecurringID)
	}
	return ids
}

func taskIDs(tasks []entity.Task) []int64 {
	ids := make([]int64, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}
