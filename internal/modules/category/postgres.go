package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

type postgresRepo struct{ db *sqlx.DB }

// NewPostgresRepository creates a new PostgreSQL category repository.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context) ([]*Category, error) {
	categories := []*Category{}
	err := r.db.SelectContext(ctx, &categories, `SELECT id, name FROM categories`)
	return categories, err
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Category, error) {
	var c Category
	err := r.db.GetContext(ctx, &c, `SELECT id, name FROM categories WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("category not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
