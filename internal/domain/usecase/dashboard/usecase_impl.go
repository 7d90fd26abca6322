package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"go-taskflow/internal/domain/calendar"
	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/filter"
	"go-taskflow/internal/domain/gateway/cache"
	"go-taskflow/internal/domain/gateway/db"
	"go-taskflow/internal/domain/model"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/msg"
)

const (
	overviewKey  = "overview"
	upcomingDays = 7
)

type dashboardUseCase struct {
	tasks    db.TaskGateway
	projects db.ProjectGateway
	cache    cache.Gateway
	clock    clockwork.Clock
	location *time.Location
}

func NewDashboardUseCase(tasks db.TaskGateway, projects db.ProjectGateway, cache cache.Gateway, clock clockwork.Clock, location *time.Location) UseCase {
	return &dashboardUseCase{
		tasks:    tasks,
		projects: projects,
		cache:    cache,
		clock:    clock,
		location: location,
	}
}

func (uc *dashboardUseCase) filterClock() filter.Clock {
	return filter.Clock{Now: uc.clock.Now(), Location: uc.location}
}

func (uc *dashboardUseCase) Overview(ctx context.Context) (*model.DashboardOverview, error) {
	return cached(ctx, uc.cache, overviewKey, func() (*model.DashboardOverview, error) {
		tasks, projects, err := uc.fetch(ctx)
		if err != nil {
			return nil, err
		}

		clock := uc.filterClock()
		return &model.DashboardOverview{
			GeneratedAt:  clock.Now.UTC(),
			Stats:        filter.Stats(tasks, clock),
			Projects:     filter.ProjectProgress(projects, tasks),
			TodayTasks:   filter.DueToday(tasks, clock),
			OverdueTasks: filter.Overdue(tasks, clock),
			Upcoming:     filter.Upcoming(tasks, clock, upcomingDays),
		}, nil
	})
}

// fetch loads tasks and projects concurrently
func (uc *dashboardUseCase) fetch(ctx context.Context) ([]entity.Task, []entity.Project, error) {
	var tasks []entity.Task
	var projects []entity.Project

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		if tasks, err = uc.tasks.FindAll(groupCtx); err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if projects, err = uc.projects.FindAll(groupCtx); err != nil {
			return fmt.Errorf("failed to load projects: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return tasks, projects, nil
}

// Stats is always computed from the store, it is cheap next to the overview
func (uc *dashboardUseCase) Stats(ctx context.Context) (*model.TaskStats, error) {
	tasks, err := uc.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := filter.Stats(tasks, uc.filterClock())
	return &stats, nil
}

func (uc *dashboardUseCase) Calendar(ctx context.Context, year int, month time.Month) (*model.CalendarMonth, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return nil, model.Invalid("dashboard.error.invalid-month", year, int(month))
	}

	key := fmt.Sprintf("calendar-%04d-%02d", year, int(month))
	return cached(ctx, uc.cache, key, func() (*model.CalendarMonth, error) {
		tasks, err := uc.tasks.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		grid := calendar.BuildMonth(tasks, year, month, uc.clock.Now(), uc.location)
		return &grid, nil
	})
}

func (uc *dashboardUseCase) Invalidate(ctx context.Context, event model.TaskEvent) error {
	if uc.cache == nil {
		return nil
	}
	if err := uc.cache.Clear(ctx); err != nil {
		return err
	}
	log.Debug(msg.GetMessage("dashboard.evicted", event.Type))
	return nil
}

// cached returns the entry stored under key, computing and storing it on a miss.
// Cache failures are logged and never fail the read.
func cached[T any](ctx context.Context, store cache.Gateway, key string, compute func() (*T, error)) (*T, error) {
	if store == nil {
		return compute()
	}

	var value T
	found, err := store.Get(ctx, key, &value)
	if err != nil {
		log.Warn(msg.GetMessage("dashboard.cache-error", key, err))
	}
	if found {
		return &value, nil
	}
	log.Debug(msg.GetMessage("dashboard.cache-miss", key))

	computed, err := compute()
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, key, computed); err != nil {
		log.Warn(msg.GetMessage("dashboard.cache-error", key, err))
	}
	return computed, nil
}
