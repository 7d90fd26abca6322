package db

import (
	"context"

	"go-taskflow/internal/domain/entity"
)

// MemoryProjectGateway keeps projects in memory. TaskCount is computed from tasks on every read.
type MemoryProjectGateway struct {
	store *memoryStore[entity.Project]
	tasks *MemoryTaskGateway
}

var _ ProjectGateway = (*MemoryProjectGateway)(nil)

func NewMemoryProjectGateway(tasks *MemoryTaskGateway) *MemoryProjectGateway {
	return &MemoryProjectGateway{
		store: newMemoryStore(
			func(p entity.Project) int64 { return p.ID },
			func(p entity.Project, id int64) entity.Project { p.ID = id; return p },
		),
		tasks: tasks,
	}
}

func (gateway *MemoryProjectGateway) FindAll(_ context.Context) ([]entity.Project, error) {
	counts := gateway.taskCounts()
	projects := gateway.store.list(nil)
	for i := range projects {
		projects[i].TaskCount = counts[projects[i].ID]
	}
	return projects, nil
}

func (gateway *MemoryProjectGateway) FindByID(_ context.Context, id int64) (*entity.Project, error) {
	project, ok := gateway.store.get(id)
	if !ok {
		return nil, nil
	}
	project.TaskCount = gateway.taskCounts()[id]
	return &project, nil
}

func (gateway *MemoryProjectGateway) Create(_ context.Context, project entity.Project) (*entity.Project, error) {
	project.TaskCount = 0
	created := gateway.store.insert(project)[0]
	return &created, nil
}

func (gateway *MemoryProjectGateway) Update(ctx context.Context, project entity.Project) (*entity.Project, error) {
	project.TaskCount = 0
	if len(gateway.store.replace(project)) == 0 {
		return nil, nil
	}
	return gateway.FindByID(ctx, project.ID)
}

func (gateway *MemoryProjectGateway) Delete(_ context.Context, id int64) error {
	gateway.store.remove(id)
	return nil
}

func (gateway *MemoryProjectGateway) taskCounts() map[int64]int {
	counts := make(map[int64]int)
	if gateway.tasks == nil {
		return counts
	}
	for _, task := range gateway.tasks.store.list(nil) {
		counts[task.ProjectID]++
	}
	return counts
}
