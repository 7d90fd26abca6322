package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-taskflow/internal/domain/entity"
)

const taskColumns = `id, title, description, priority, deadline, project_id, completed, created_at,
		completed_at, is_recurring, recurring_id, recurrence_pattern`

type SQLCTaskGateway struct {
	DB *sql.DB
}

var _ TaskGateway = (*SQLCTaskGateway)(nil)

func NewSQLCTaskGateway(db *sql.DB) *SQLCTaskGateway {
	return &SQLCTaskGateway{DB: db}
}

func (gateway *SQLCTaskGateway) FindAll(ctx context.Context) ([]entity.Task, error) {
	return gateway.query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
}

func (gateway *SQLCTaskGateway) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	row := gateway.DB.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (gateway *SQLCTaskGateway) FindByIDs(ctx context.Context, ids []int64) ([]entity.Task, error) {
	if len(ids) == 0 {
		return []entity.Task{}, nil
	}
	placeholders, args := inClause(1, ids)
	return gateway.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id IN (`+placeholders+`) ORDER BY id`, args...)
}

func (gateway *SQLCTaskGateway) FindByProjectID(ctx context.Context, projectID int64) ([]entity.Task, error) {
	return gateway.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE project_id = $1 ORDER BY id`, projectID)
}

func (gateway *SQLCTaskGateway) FindByRecurringID(ctx context.Context, recurringID string) ([]entity.Task, error) {
	return gateway.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE recurring_id = $1 ORDER BY deadline, id`, recurringID)
}

func (gateway *SQLCTaskGateway) Create(ctx context.Context, task entity.Task) (*entity.Task, error) {
	return insertTask(ctx, gateway.DB, task)
}

// CreateBatch inserts every task in one transaction, all or nothing
func (gateway *SQLCTaskGateway) CreateBatch(ctx context.Context, tasks []entity.Task) ([]entity.Task, error) {
	if len(tasks) == 0 {
		return []entity.Task{}, nil
	}

	tx, err := gateway.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	results := make([]entity.Task, 0, len(tasks))
	for _, task := range tasks {
		created, err := insertTask(ctx, tx, task)
		if err != nil {
			return nil, err
		}
		results = append(results, *created)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLCTaskGateway) Update(ctx context.Context, task entity.Task) (*entity.Task, error) {
	updated, err := updateTask(ctx, gateway.DB, task)
	if err != nil || !updated {
		return nil, err
	}
	return &task, nil
}

// UpdateBatch updates every task in one transaction. Tasks that no longer exist are skipped.
func (gateway *SQLCTaskGateway) UpdateBatch(ctx context.Context, tasks []entity.Task) ([]entity.Task, error) {
	if len(tasks) == 0 {
		return []entity.Task{}, nil
	}

	tx, err := gateway.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	results := make([]entity.Task, 0, len(tasks))
	for _, task := range tasks {
		updated, err := updateTask(ctx, tx, task)
		if err != nil {
			return nil, err
		}
		if updated {
			results = append(results, task)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLCTaskGateway) Delete(ctx context.Context, id int64) error {
	_, err := gateway.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func (gateway *SQLCTaskGateway) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders, args := inClause(1, ids)
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (gateway *SQLCTaskGateway) query(ctx context.Context, query string, args ...any) ([]entity.Task, error) {
	rows, err := gateway.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertTask(ctx context.Context, db execer, task entity.Task) (*entity.Task, error) {
	err := db.QueryRowContext(ctx, `
		INSERT INTO tasks (title, description, priority, deadline, project_id, completed, created_at,
			completed_at, is_recurring, recurring_id, recurrence_pattern)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		task.Title, task.Description, string(task.Priority), utc(task.Deadline), task.ProjectID, task.Completed,
		task.CreatedAt.UTC(), utc(task.CompletedAt), task.IsRecurring, task.RecurringID, task.RecurrencePattern).
		Scan(&task.ID)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &task, nil
}

func updateTask(ctx context.Context, db execer, task entity.Task) (bool, error) {
	result, err := db.ExecContext(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, priority = $3, deadline = $4, project_id = $5, completed = $6,
			completed_at = $7, is_recurring = $8, recurring_id = $9, recurrence_pattern = $10
		WHERE id = $11`,
		task.Title, task.Description, string(task.Priority), utc(task.Deadline), task.ProjectID, task.Completed,
		utc(task.CompletedAt), task.IsRecurring, task.RecurringID, task.RecurrencePattern, task.ID)
	if err != nil {
		return false, fmt.Errorf("update task %d: %w", task.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanTask(row rowScanner) (*entity.Task, error) {
	var (
		task        entity.Task
		priority    string
		deadline    nullTime
		createdAt   nullTime
		completedAt nullTime
		recurringID sql.NullString
		pattern     sql.NullString
	)
	err := row.Scan(&task.ID, &task.Title, &task.Description, &priority, &deadline, &task.ProjectID,
		&task.Completed, &createdAt, &completedAt, &task.IsRecurring, &recurringID, &pattern)
	if err != nil {
		return nil, err
	}

	task.Priority = entity.Priority(priority)
	task.Deadline = deadline.Ptr()
	task.CreatedAt = createdAt.Time
	task.CompletedAt = completedAt.Ptr()
	task.RecurringID = recurringID.String
	if task.RecurrencePattern, err = decodePattern(pattern); err != nil {
		return nil, err
	}
	return &task, nil
}
