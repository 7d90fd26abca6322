package project

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/filter"
	"go-taskflow/internal/domain/gateway/db"
	"go-taskflow/internal/domain/gateway/event"
	"go-taskflow/internal/domain/model"
)

type projectUseCase struct {
	projects  db.ProjectGateway
	tasks     db.TaskGateway
	publisher event.Publisher
	clock     clockwork.Clock
}

func NewProjectUseCase(projects db.ProjectGateway, tasks db.TaskGateway, publisher event.Publisher, clock clockwork.Clock) UseCase {
	return &projectUseCase{
		projects:  projects,
		tasks:     tasks,
		publisher: publisher,
		clock:     clock,
	}
}

func (uc *projectUseCase) FindAll(ctx context.Context) ([]entity.Project, error) {
	return uc.projects.FindAll(ctx)
}

func (uc *projectUseCase) FindAllWithTasks(ctx context.Context) ([]model.ProjectTasks, error) {
	projects, err := uc.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter.GroupByProject(projects, tasks), nil
}

func (uc *projectUseCase) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	project, err := uc.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, model.NotFound("project.error.not-found")
	}
	return project, nil
}

func (uc *projectUseCase) FindTasks(ctx context.Context, id int64) ([]entity.Task, error) {
	if _, err := uc.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return uc.tasks.FindByProjectID(ctx, id)
}

func (uc *projectUseCase) Create(ctx context.Context, dto model.CreateProjectDTO) (*entity.Project, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, model.Invalid("project.error.name-required")
	}
	color := strings.TrimSpace(dto.Color)
	if color == "" {
		color = entity.DefaultProjectColor
	}

	created, err := uc.projects.Create(ctx, entity.Project{Name: name, Color: color})
	if err != nil {
		return nil, err
	}
	event.Emit(ctx, uc.publisher, model.EventProjectChanged, uc.clock.Now(), created.ID)
	return created, nil
}

func (uc *projectUseCase) Update(ctx context.Context, id int64, dto model.UpdateProjectDTO) (*entity.Project, error) {
	existing, err := uc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, model.Invalid("project.error.name-required")
		}
		existing.Name = name
	}
	if dto.Color != nil && strings.TrimSpace(*dto.Color) != "" {
		existing.Color = strings.TrimSpace(*dto.Color)
	}

	updated, err := uc.projects.Update(ctx, *existing)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.NotFound("project.error.not-found")
	}
	event.Emit(ctx, uc.publisher, model.EventProjectChanged, uc.clock.Now(), updated.ID)
	return updated, nil
}

// Delete removes the project only; its tasks stay with a dangling projectId
func (uc *projectUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.FindByID(ctx, id); err != nil {
		return err
	}
	if err := uc.projects.Delete(ctx, id); err != nil {
		return err
	}
	event.Emit(ctx, uc.publisher, model.EventProjectChanged, uc.clock.Now(), id)
	return nil
}
