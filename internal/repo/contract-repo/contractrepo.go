package contractrepo

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Contract, error) {
	query := `
        SELECT id, project_id, contributor_id, role, hourly_rate, created_at
        FROM contracts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var contract domain.Contract
	err := row.Scan(&contract.ID, &contract.ProjectID, &contract.ContributorID, &contract.Role, &contract.HourlyRate, &contract.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get contract", zap.Error(err))
		return nil, err
	}
	return &contract, nil
}

// FindByNaturalKey resolves a contract by its composite key: repository,
// contributor, provider and role.
func (r *Repository) FindByNaturalKey(ctx context.Context, key domain.ContractID) (*domain.Contract, error) {
	query := `
        SELECT c.id, c.project_id, c.contributor_id, c.role, c.hourly_rate, c.created_at
        FROM contracts c
        JOIN projects p ON p.id = c.project_id
        JOIN contributors u ON u.id = c.contributor_id
        WHERE p.repo_name = $1 AND u.username = $2 AND u.provider = $3 AND c.role = $4
    `
	row := r.db.QueryRow(ctx, query, key.RepoName, key.Username, key.Provider, key.Role)
	var contract domain.Contract
	err := row.Scan(&contract.ID, &contract.ProjectID, &contract.ContributorID, &contract.Role, &contract.HourlyRate, &contract.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get contract by natural key", zap.Error(err))
		return nil, err
	}
	return &contract, nil
}

func (r *Repository) FindCandidatesByProjectID(ctx context.Context, projectID int) ([]domain.Candidate, error) {
	query := `
        SELECT c.id, c.project_id, c.contributor_id, c.role, c.hourly_rate, c.created_at,
               u.id, u.username, u.provider
        FROM contracts c
        JOIN contributors u ON u.id = c.contributor_id
        WHERE c.project_id = $1
        ORDER BY c.id
    `
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		zap.L().Error("failed to fetch candidates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var cand domain.Candidate
		err := rows.Scan(
			&cand.Contract.ID, &cand.Contract.ProjectID, &cand.Contract.ContributorID,
			&cand.Contract.Role, &cand.Contract.HourlyRate, &cand.Contract.CreatedAt,
			&cand.Contributor.ID, &cand.Contributor.Username, &cand.Contributor.Provider,
		)
		if err != nil {
			zap.L().Error("failed to scan candidate row", zap.Error(err))
			return nil, err
		}
		candidates = append(candidates, cand)
	}

	return candidates, nil
}
