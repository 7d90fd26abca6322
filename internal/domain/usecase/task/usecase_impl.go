package task

import (
	"context"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/filter"
	"go-taskflow/internal/domain/gateway/db"
	"go-taskflow/internal/domain/gateway/event"
	"go-taskflow/internal/domain/model"
)

type taskUseCase struct {
	tasks     db.TaskGateway
	projects  db.ProjectGateway
	subtasks  db.SubtaskGateway
	publisher event.Publisher
	clock     clockwork.Clock
	location  *time.Location
}

func NewTaskUseCase(
	tasks db.TaskGateway,
	projects db.ProjectGateway,
	subtasks db.SubtaskGateway,
	publisher event.Publisher,
	clock clockwork.Clock,
	location *time.Location,
) UseCase {
	return &taskUseCase{
		tasks:     tasks,
		projects:  projects,
		subtasks:  subtasks,
		publisher: publisher,
		clock:     clock,
		location:  location,
	}
}

func (uc *taskUseCase) filterClock() filter.Clock {
	return filter.Clock{Now: uc.clock.Now(), Location: uc.location}
}

func (uc *taskUseCase) FindAll(ctx context.Context, query model.TaskQuery) (*model.Page[entity.Task], error) {
	criteria, order, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var projectNames map[int64]string
	if strings.TrimSpace(criteria.Search.Term) != "" {
		projects, err := uc.projects.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		projectNames = filter.ProjectNames(projects)
	}

	result := filter.Apply(tasks, criteria, uc.filterClock(), projectNames)
	filter.Sort(result, order)
	return model.Paginate(result, query.Page, query.Size), nil
}

// ParseQuery validates the list parameters and turns them into filter criteria and a sort order
func ParseQuery(query model.TaskQuery) (filter.Criteria, filter.SortOrder, error) {
	status, err := filter.ParseStatus(query.Status)
	if err != nil {
		return filter.Criteria{}, "", err
	}
	order, err := filter.ParseSortOrder(query.Sort)
	if err != nil {
		return filter.Criteria{}, "", err
	}

	var priority entity.Priority
	if strings.TrimSpace(query.Priority) != "" {
		priority = entity.ParsePriority(query.Priority)
		if !priority.IsValid() {
			return filter.Criteria{}, "", model.Invalid("task.error.invalid-priority", query.Priority)
		}
	}

	return filter.Criteria{
		Status:    status,
		Priority:  priority,
		ProjectID: query.ProjectID,
		Search: filter.SearchOptions{
			Term:      query.Search,
			Fields:    filter.ParseFields(query.Fields),
			Fuzzy:     query.Fuzzy,
			Threshold: filter.ClampThreshold(query.Threshold),
		},
	}, order, nil
}

func (uc *taskUseCase) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	task, err := uc.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, model.NotFound("task.error.not-found")
	}
	return task, nil
}

func (uc *taskUseCase) Create(ctx context.Context, dto model.CreateTaskDTO) (*entity.Task, error) {
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, model.Invalid("task.error.title-required")
	}

	priority := entity.PriorityMedium
	if strings.TrimSpace(dto.Priority) != "" {
		priority = entity.ParsePriority(dto.Priority)
		if !priority.IsValid() {
			return nil, model.Invalid("task.error.invalid-priority", dto.Priority)
		}
	}

	if err := uc.requireProject(ctx, dto.ProjectID); err != nil {
		return nil, err
	}

	created, err := uc.tasks.Create(ctx, entity.Task{
		Title:       title,
		Description: dto.Description,
		Priority:    priority,
		Deadline:    dto.Deadline,
		ProjectID:   dto.ProjectID,
		CreatedAt:   uc.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	event.Emit(ctx, uc.publisher, model.EventTaskCreated, uc.clock.Now(), created.ID)
	return created, nil
}

func (uc *taskUseCase) Update(ctx context.Context, id int64, dto model.UpdateTaskDTO) (*entity.Task, error) {
	existing, err := uc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			return nil, model.Invalid("task.error.title-required")
		}
		existing.Title = title
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.Priority != nil {
		priority := entity.ParsePriority(*dto.Priority)
		if !priority.IsValid() {
			return nil, model.Invalid("task.error.invalid-priority", *dto.Priority)
		}
		existing.Priority = priority
	}
	if dto.ClearDeadline {
		existing.Deadline = nil
	} else if dto.Deadline != nil {
		existing.Deadline = dto.Deadline
	}
	if dto.ProjectID != nil && *dto.ProjectID != existing.ProjectID {
		if err := uc.requireProject(ctx, *dto.ProjectID); err != nil {
			return nil, err
		}
		existing.ProjectID = *dto.ProjectID
	}
	if dto.Completed != nil {
		uc.setCompleted(existing, *dto.Completed)
	}

	return uc.save(ctx, *existing)
}

func (uc *taskUseCase) ToggleComplete(ctx context.Context, id int64) (*entity.Task, error) {
	existing, err := uc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.setCompleted(existing, !existing.Completed)
	return uc.save(ctx, *existing)
}

// setCompleted stamps completedAt on the false to true transition only.
// Reopening a task keeps the previous completedAt.
func (uc *taskUseCase) setCompleted(task *entity.Task, completed bool) {
	if completed && !task.Completed {
		now := uc.clock.Now().UTC()
		task.CompletedAt = &now
	}
	task.Completed = completed
}

func (uc *taskUseCase) save(ctx context.Context, task entity.Task) (*entity.Task, error) {
	updated, err := uc.tasks.Update(ctx, task)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.NotFound("task.error.not-found")
	}
	event.Emit(ctx, uc.publisher, model.EventTaskUpdated, uc.clock.Now(), updated.ID)
	return updated, nil
}

func (uc *taskUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := uc.subtasks.DeleteByTaskID(ctx, id); err != nil {
		return err
	}
	if err := uc.tasks.Delete(ctx, id); err != nil {
		return err
	}
	event.Emit(ctx, uc.publisher, model.EventTaskDeleted, uc.clock.Now(), id)
	return nil
}

func (uc *taskUseCase) BulkComplete(ctx context.Context, ids []int64) (*model.BulkResultDTO, error) {
	found, err := uc.tasks.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	selected, err := filter.ValidateBulkComplete(ids, found)
	if err != nil {
		return nil, err
	}

	for i := range selected {
		uc.setCompleted(&selected[i], true)
	}
	updated, err := uc.tasks.UpdateBatch(ctx, selected)
	if err != nil {
		return nil, err
	}

	event.Emit(ctx, uc.publisher, model.EventTaskUpdated, uc.clock.Now(), taskIDs(updated)...)
	return &model.BulkResultDTO{Tasks: updated}, nil
}

func (uc *taskUseCase) BulkDelete(ctx context.Context, ids []int64) (*model.BulkResultDTO, error) {
	found, err := uc.tasks.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	selected, err := filter.ValidateBulkDelete(ids, found)
	if err != nil {
		return nil, err
	}

	selectedIDs := taskIDs(selected)
	for _, id := range selectedIDs {
		if _, err := uc.subtasks.DeleteByTaskID(ctx, id); err != nil {
			return nil, err
		}
	}
	deleted, err := uc.tasks.DeleteBatch(ctx, selectedIDs)
	if err != nil {
		return nil, err
	}

	event.Emit(ctx, uc.publisher, model.EventTaskDeleted, uc.clock.Now(), selectedIDs...)
	return &model.BulkResultDTO{DeletedCount: deleted}, nil
}

func (uc *taskUseCase) BulkMove(ctx context.Context, ids []int64, projectID int64) (*model.BulkResultDTO, error) {
	found, err := uc.tasks.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	selected, err := filter.ValidateBulkMove(ids, found, projectID)
	if err != nil {
		return nil, err
	}
	if err := uc.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	for i := range selected {
		selected[i].ProjectID = projectID
	}
	updated, err := uc.tasks.UpdateBatch(ctx, selected)
	if err != nil {
		return nil, err
	}

	event.Emit(ctx, uc.publisher, model.EventTaskUpdated, uc.clock.Now(), taskIDs(updated)...)
	return &model.BulkResultDTO{Tasks: updated}, nil
}

func (uc *taskUseCase) Highlight(ctx context.Context, id int64, term string) (*model.TaskHighlight, error) {
	task, err := uc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.TaskHighlight{
		TaskID:      task.ID,
		Title:       filter.Highlight(task.Title, term),
		Description: filter.Highlight(task.Description, term),
	}, nil
}

func (uc *taskUseCase) requireProject(ctx context.Context, projectID int64) error {
	if projectID == 0 {
		return model.Invalid("task.error.project-required")
	}
	project, err := uc.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return model.Invalid("task.error.project-not-found", projectID)
	}
	return nil
}

func taskIDs(tasks []entity.Task) []int64 {
	ids := make([]int64, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}
