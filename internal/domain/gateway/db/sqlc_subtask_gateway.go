package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-taskflow/internal/domain/entity"
)

const subtaskColumns = `id, name, description, task_id, completed, deadline`

type SQLCSubtaskGateway struct {
	DB *sql.DB
}

var _ SubtaskGateway = (*SQLCSubtaskGateway)(nil)

func NewSQLCSubtaskGateway(db *sql.DB) *SQLCSubtaskGateway {
	return &SQLCSubtaskGateway{DB: db}
}

func (gateway *SQLCSubtaskGateway) FindAll(ctx context.Context) ([]entity.Subtask, error) {
	return gateway.query(ctx, `SELECT `+subtaskColumns+` FROM subtasks ORDER BY id`)
}

func (gateway *SQLCSubtaskGateway) FindByID(ctx context.Context, id int64) (*entity.Subtask, error) {
	row := gateway.DB.QueryRowContext(ctx, `SELECT `+subtaskColumns+` FROM subtasks WHERE id = $1`, id)
	subtask, err := scanSubtask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return subtask, nil
}

func (gateway *SQLCSubtaskGateway) FindByIDs(ctx context.Context, ids []int64) ([]entity.Subtask, error) {
	if len(ids) == 0 {
		return []entity.Subtask{}, nil
	}
	placeholders, args := inClause(1, ids)
	return gateway.query(ctx, `SELECT `+subtaskColumns+` FROM subtasks WHERE id IN (`+placeholders+`) ORDER BY id`, args...)
}

func (gateway *SQLCSubtaskGateway) FindByTaskID(ctx context.Context, taskID int64) ([]entity.Subtask, error) {
	return gateway.query(ctx, `SELECT `+subtaskColumns+` FROM subtasks WHERE task_id = $1 ORDER BY id`, taskID)
}

func (gateway *SQLCSubtaskGateway) Create(ctx context.Context, subtask entity.Subtask) (*entity.Subtask, error) {
	err := gateway.DB.QueryRowContext(ctx, `
		INSERT INTO subtasks (name, description, task_id, completed, deadline)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		subtask.Name, subtask.Description, subtask.TaskID, subtask.Completed, utc(subtask.Deadline)).
		Scan(&subtask.ID)
	if err != nil {
		return nil, fmt.Errorf("insert subtask: %w", err)
	}
	return &subtask, nil
}

func (gateway *SQLCSubtaskGateway) Update(ctx context.Context, subtask entity.Subtask) (*entity.Subtask, error) {
	updated, err := updateSubtask(ctx, gateway.DB, subtask)
	if err != nil || !updated {
		return nil, err
	}
	return &subtask, nil
}

func (gateway *SQLCSubtaskGateway) UpdateBatch(ctx context.Context, subtasks []entity.Subtask) ([]entity.Subtask, error) {
	if len(subtasks) == 0 {
		return []entity.Subtask{}, nil
	}

	tx, err := gateway.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	results := make([]entity.Subtask, 0, len(subtasks))
	for _, subtask := range subtasks {
		updated, err := updateSubtask(ctx, tx, subtask)
		if err != nil {
			return nil, err
		}
		if updated {
			results = append(results, subtask)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLCSubtaskGateway) Delete(ctx context.Context, id int64) error {
	_, err := gateway.DB.ExecContext(ctx, `DELETE FROM subtasks WHERE id = $1`, id)
	return err
}

func (gateway *SQLCSubtaskGateway) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders, args := inClause(1, ids)
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM subtasks WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (gateway *SQLCSubtaskGateway) DeleteByTaskID(ctx context.Context, taskID int64) (int64, error) {
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = $1`, taskID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (gateway *SQLCSubtaskGateway) query(ctx context.Context, query string, args ...any) ([]entity.Subtask, error) {
	rows, err := gateway.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subtasks := make([]entity.Subtask, 0)
	for rows.Next() {
		subtask, err := scanSubtask(rows)
		if err != nil {
			return nil, err
		}
		subtasks = append(subtasks, *subtask)
	}
	return subtasks, rows.Err()
}

func updateSubtask(ctx context.Context, db execer, subtask entity.Subtask) (bool, error) {
	result, err := db.ExecContext(ctx, `
		UPDATE subtasks
		SET name = $1, description = $2, task_id = $3, completed = $4, deadline = $5
		WHERE id = $6`,
		subtask.Name, subtask.Description, subtask.TaskID, subtask.Completed, utc(subtask.Deadline), subtask.ID)
	if err != nil {
		return false, fmt.Errorf("update subtask %d: %w", subtask.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanSubtask(row rowScanner) (*entity.Subtask, error) {
	var (
		subtask  entity.Subtask
		deadline nullTime
	)
	if err := row.Scan(&subtask.ID, &subtask.Name, &subtask.Description, &subtask.TaskID,
		&subtask.Completed, &deadline); err != nil {
		return nil, err
	}
	subtask.Deadline = deadline.Ptr()
	return &subtask, nil
}
