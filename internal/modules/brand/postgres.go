package brand

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

type postgresRepo struct{ db *sqlx.DB }

// NewPostgresRepository creates a new PostgreSQL brand repository.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context, category *int64) ([]*Brand, error) {
	query := `SELECT id, name, header_image, category FROM brands`
	args := []interface{}{}
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, *category)
	}

	brands := []*Brand{}
	err := r.db.SelectContext(ctx, &brands, query, args...)
	return brands, err
}

func (r *postgresRepo) Create(ctx context.Context, b *Brand) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO brands (name, header_image, category)
		VALUES ($1, $2, $3)
		RETURNING id`,
		b.Name, b.HeaderImage, b.Category,
	).Scan(&b.ID)
}

func (r *postgresRepo) Update(ctx context.Context, b *Brand) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM brands WHERE id = $1)`, b.ID); err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("brand not found")
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE brands SET name = $1, header_image = $2, category = $3 WHERE id = $4`,
		b.Name, b.HeaderImage, b.Category, b.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("brand not found")
	}

	return tx.Commit()
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM brands WHERE id = $1)`, id); err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("brand not found")
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("brand not found")
	}

	return tx.Commit()
}
