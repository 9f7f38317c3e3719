package price

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
	"github.com/eduolivag5/backmarket-api/internal/database"
)

type postgresRepo struct{ db *sqlx.DB }

// NewPostgresRepository creates a new PostgreSQL price repository.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context) ([]*Price, error) {
	prices := []*Price{}
	err := r.db.SelectContext(ctx, &prices, `
		SELECT id, id_product, status, price FROM prices`)
	return prices, err
}

// ListByProduct returns the prices of one product. An unknown product
// yields an empty list, not an error: the parameter is a filter, not
// an identifier lookup.
func (r *postgresRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*Price, error) {
	prices := []*Price{}
	err := r.db.SelectContext(ctx, &prices, `
		SELECT id, id_product, status, price FROM prices WHERE id_product = $1`, productID)
	return prices, err
}

// Create checks the (product, status) uniqueness precondition and
// inserts the price inside a single transaction. A referential
// violation on the product reference is a conflict, not a server
// error.
func (r *postgresRepo) Create(ctx context.Context, p *Price) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM prices WHERE id_product = $1 AND status = $2)`,
		p.ProductID, p.Status)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("a price for this product and status already exists")
	}

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO prices (id_product, status, price)
		VALUES ($1, $2, $3)
		RETURNING id`,
		p.ProductID, p.Status, p.Price,
	).Scan(&p.ID)
	if err != nil {
		switch {
		case database.IsForeignKeyViolation(err):
			return apperr.Conflict("product does not exist")
		case database.IsUniqueViolation(err):
			return apperr.Conflict("a price for this product and status already exists")
		}
		return err
	}

	return tx.Commit()
}

// UpdateByProductStatus sets the price of an existing (product,
// status) pair.
func (r *postgresRepo) UpdateByProductStatus(ctx context.Context, p *Price) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM prices WHERE id_product = $1 AND status = $2)`,
		p.ProductID, p.Status)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("price not found")
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE prices SET price = $1 WHERE id_product = $2 AND status = $3`,
		p.Price, p.ProductID, p.Status)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("price not found")
	}

	return tx.Commit()
}

func (r *postgresRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM prices WHERE id = $1)`, id); err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("price not found")
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM prices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("price not found")
	}

	return tx.Commit()
}

// DeleteByProduct removes every price row of one product in a single
// statement.
func (r *postgresRepo) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM prices WHERE id_product = $1`, productID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("no prices found for this product")
	}

	return tx.Commit()
}
