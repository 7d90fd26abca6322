package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-taskflow/internal/domain/entity"
)

type SQLCProjectGateway struct {
	DB *sql.DB
}

var _ ProjectGateway = (*SQLCProjectGateway)(nil)

func NewSQLCProjectGateway(db *sql.DB) *SQLCProjectGateway {
	return &SQLCProjectGateway{DB: db}
}

// FindAll returns the projects with their task count computed by the database
func (gateway *SQLCProjectGateway) FindAll(ctx context.Context) ([]entity.Project, error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT p.id, p.name, p.color, COUNT(t.id)
		FROM projects p
		LEFT JOIN tasks t ON t.project_id = p.id
		GROUP BY p.id, p.name, p.color
		ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]entity.Project, 0)
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.TaskCount); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (gateway *SQLCProjectGateway) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	var p entity.Project
	err := gateway.DB.QueryRowContext(ctx, `
		SELECT p.id, p.name, p.color, (SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id)
		FROM projects p
		WHERE p.id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Color, &p.TaskCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (gateway *SQLCProjectGateway) Create(ctx context.Context, project entity.Project) (*entity.Project, error) {
	err := gateway.DB.QueryRowContext(ctx, `
		INSERT INTO projects (name, color)
		VALUES ($1, $2)
		RETURNING id`, project.Name, project.Color).
		Scan(&project.ID)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	project.TaskCount = 0
	return &project, nil
}

func (gateway *SQLCProjectGateway) Update(ctx context.Context, project entity.Project) (*entity.Project, error) {
	result, err := gateway.DB.ExecContext(ctx, `
		UPDATE projects
		SET name = $1, color = $2
		WHERE id = $3`, project.Name, project.Color, project.ID)
	if err != nil {
		return nil, fmt.Errorf("update project %d: %w", project.ID, err)
	}
	if affected, err := result.RowsAffected(); err != nil || affected == 0 {
		return nil, err
	}
	return gateway.FindByID(ctx, project.ID)
}

// Delete removes the project only, its tasks keep pointing at the deleted id
func (gateway *SQLCProjectGateway) Delete(ctx context.Context, id int64) error {
	_, err := gateway.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}
