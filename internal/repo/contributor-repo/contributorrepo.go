package contributorrepo

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

func (repo *Repository) FindByUsername(ctx context.Context, username, provider string) (*domain.Contributor, error) {
	var contributor domain.Contributor
	query := `
		SELECT id, username, provider, password_hash
		FROM contributors
		WHERE username = $1 AND provider = $2
	`
	err := repo.db.QueryRow(ctx, query, username, provider).
		Scan(&contributor.ID, &contributor.Username, &contributor.Provider, &contributor.Password)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find contributor", zap.Error(err))
		return nil, err
	}
	return &contributor, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.Contributor, error) {
	var contributor domain.Contributor
	query := `
		SELECT id, username, provider, password_hash
		FROM contributors
		WHERE id = $1
	`
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&contributor.ID, &contributor.Username, &contributor.Provider, &contributor.Password)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find contributor", zap.Error(err))
		return nil, err
	}
	return &contributor, nil
}

func (repo *Repository) Create(ctx context.Context, contributor *domain.Contributor) (*domain.Contributor, error) {
	query := `
		INSERT INTO contributors (username, provider, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, contributor.Username, contributor.Provider, contributor.Password).
		Scan(&contributor.ID)
	if err != nil {
		zap.L().Error("can't save contributor", zap.Error(err))
		return nil, err
	}
	return contributor, nil
}
