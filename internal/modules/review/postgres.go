package review

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type postgresRepo struct{ db *sqlx.DB }

// NewPostgresRepository creates a new PostgreSQL review repository.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context) ([]*Review, error) {
	reviews := []*Review{}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT r.id, r.stars, r.comment, r.image,
		       pr.id AS product_id, pr.name_short AS model, u.name AS user_name
		FROM reviews r
		INNER JOIN products pr ON r.id_product = pr.id
		INNER JOIN users u ON r.id_user = u.id`)
	return reviews, err
}
