package color

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

type postgresRepo struct{ db *sqlx.DB }

// NewPostgresRepository creates a new PostgreSQL color repository.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context) ([]*Color, error) {
	colors := []*Color{}
	err := r.db.SelectContext(ctx, &colors, `SELECT id, name FROM colors`)
	return colors, err
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Color, error) {
	var c Color
	err := r.db.GetContext(ctx, &c, `SELECT id, name FROM colors WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("color not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c *Color) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO colors (name) VALUES ($1) RETURNING id`,
		c.Name,
	).Scan(&c.ID)
}
