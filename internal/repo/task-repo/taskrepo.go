package taskrepo

import (
	"context"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Task, error) {
	query := `
        SELECT id, project_id, issue_number, role, estimation_minutes, assignee_username, assignee_contract_id
        FROM tasks
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var task domain.Task
	err := row.Scan(&task.ID, &task.ProjectID, &task.IssueNumber, &task.Role, &task.EstimationMinutes, &task.AssigneeUsername, &task.AssigneeContractID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get task", zap.Error(err))
		return nil, err
	}
	return &task, nil
}

func (r *Repository) UpdateAssignee(ctx context.Context, taskID, contractID int, username string) error {
	query := `
		UPDATE tasks
		SET assignee_username = $1, assignee_contract_id = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, username, contractID, taskID)
	if err != nil {
		zap.L().Error("failed to update task assignee", zap.Error(err))
		return err
	}
	return nil
}
