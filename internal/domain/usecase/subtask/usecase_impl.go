package subtask

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/gateway/db"
	"go-taskflow/internal/domain/gateway/event"
	"go-taskflow/internal/domain/model"
)

type subtaskUseCase struct {
	subtasks  db.SubtaskGateway
	tasks     db.TaskGateway
	publisher event.Publisher
	clock     clockwork.Clock
}

func NewSubtaskUseCase(subtasks db.SubtaskGateway, tasks db.TaskGateway, publisher event.Publisher, clock clockwork.Clock) UseCase {
	return &subtaskUseCase{
		subtasks:  subtasks,
		tasks:     tasks,
		publisher: publisher,
		clock:     clock,
	}
}

func (uc *subtaskUseCase) FindAll(ctx context.Context) ([]entity.Subtask, error) {
	return uc.subtasks.FindAll(ctx)
}

func (uc *subtaskUseCase) FindByTaskID(ctx context.Context, taskID int64) ([]entity.Subtask, error) {
	return uc.subtasks.FindByTaskID(ctx, taskID)
}

func (uc *subtaskUseCase) FindByID(ctx context.Context, id int64) (*entity.Subtask, error) {
	subtask, err := uc.subtasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subtask == nil {
		return nil, model.NotFound("subtask.error.not-found")
	}
	return subtask, nil
}

func (uc *subtaskUseCase) Create(ctx context.Context, dto model.CreateSubtaskDTO) (*entity.Subtask, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, model.Invalid("subtask.error.name-required")
	}
	if dto.TaskID == 0 {
		return nil, model.Invalid("subtask.error.task-required")
	}
	task, err := uc.tasks.FindByID(ctx, dto.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, model.Invalid("subtask.error.task-not-found", dto.TaskID)
	}

	created, err := uc.subtasks.Create(ctx, entity.Subtask{
		Name:        name,
		Description: dto.Description,
		TaskID:      dto.TaskID,
		Deadline:    dto.Deadline,
	})
	if err != nil {
		return nil, err
	}
	event.Emit(ctx, uc.publisher, model.EventSubtaskChanged, uc.clock.Now(), created.ID)
	return created, nil
}

func (uc *subtaskUseCase) Update(ctx context.Context, id int64, dto model.UpdateSubtaskDTO) (*entity.Subtask, error) {
	existing, err := uc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, model.Invalid("subtask.error.name-required")
		}
		existing.Name = name
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.Completed != nil {
		existing.Completed = *dto.Completed
	}
	if dto.Deadline != nil {
		existing.Deadline = dto.Deadline
	}

	updated, err := uc.subtasks.Update(ctx, *existing)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.NotFound("subtask.error.not-found")
	}
	event.Emit(ctx, uc.publisher, model.EventSubtaskChanged, uc.clock.Now(), updated.ID)
	return updated, nil
}

func (uc *subtaskUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.FindByID(ctx, id); err != nil {
		return err
	}
	if err := uc.subtasks.Delete(ctx, id); err != nil {
		return err
	}
	event.Emit(ctx, uc.publisher, model.EventSubtaskChanged, uc.clock.Now(), id)
	return nil
}

func (uc *subtaskUseCase) BulkComplete(ctx context.Context, ids []int64) ([]entity.Subtask, error) {
	selected, err := uc.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range selected {
		selected[i].Completed = true
	}
	updated, err := uc.subtasks.UpdateBatch(ctx, selected)
	if err != nil {
		return nil, err
	}
	event.Emit(ctx, uc.publisher, model.EventSubtaskChanged, uc.clock.Now(), subtaskIDs(updated)...)
	return updated, nil
}

func (uc *subtaskUseCase) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	selected, err := uc.resolve(ctx, ids)
	if err != nil {
		return 0, err
	}
	selectedIDs := subtaskIDs(selected)
	deleted, err := uc.subtasks.DeleteBatch(ctx, selectedIDs)
	if err != nil {
		return 0, err
	}
	event.Emit(ctx, uc.publisher, model.EventSubtaskChanged, uc.clock.Now(), selectedIDs...)
	return deleted, nil
}

// resolve loads the selected subtasks, failing when any id is unknown or repeated
func (uc *subtaskUseCase) resolve(ctx context.Context, ids []int64) ([]entity.Subtask, error) {
	if len(ids) == 0 {
		return nil, model.Invalid("subtask.bulk.no-subtasks")
	}
	found, err := uc.subtasks.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]entity.Subtask, len(found))
	for _, subtask := range found {
		byID[subtask.ID] = subtask
	}

	selected := make([]entity.Subtask, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		_, dup := seen[id]
		subtask, ok := byID[id]
		if dup || !ok {
			return nil, model.Invalid("subtask.bulk.not-found")
		}
		seen[id] = struct{}{}
		selected = append(selected, subtask)
	}
	return selected, nil
}

func subtaskIDs(subtasks []entity.Subtask) []int64 {
	ids := make([]int64, len(subtasks))
	for i, subtask := range subtasks {
		ids[i] = subtask.ID
	}
	return ids
}
