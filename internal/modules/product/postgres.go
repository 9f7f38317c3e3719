package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
	"github.com/eduolivag5/backmarket-api/internal/database"
)

type postgresRepo struct{ db *sqlx.DB }

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id, created_at, category, brand, name_short, name, colors, storages, images, tags`

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	var p Product
	err := r.db.GetContext(ctx, &p, `
		SELECT `+productColumns+`
		FROM products WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("product not found")
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachPrices(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	n := 1
	if f.Category != nil {
		query += fmt.Sprintf(` AND category = $%d`, n)
		args = append(args, *f.Category)
		n++
	}
	if len(f.Tags) > 0 {
		// && is array overlap: any shared tag matches
		query += fmt.Sprintf(` AND tags && $%d`, n)
		args = append(args, pq.Array(f.Tags))
		n++
	}

	products := []*Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, err
	}
	for _, p := range products {
		if err := r.attachPrices(ctx, p); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (r *postgresRepo) attachPrices(ctx context.Context, p *Product) error {
	prices := []PriceEntry{}
	err := r.db.SelectContext(ctx, &prices, `
		SELECT ps.state AS status, pr.price
		FROM prices pr
		JOIN phone_status ps ON pr.status = ps.id
		WHERE pr.id_product = $1`, p.ID)
	if err != nil {
		return err
	}
	p.Prices = prices
	return nil
}

// Create checks the name uniqueness precondition and inserts the
// product inside a single transaction. The generated identifier and
// creation timestamp are written back into p.
func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM products WHERE name = $1 OR name_short = $2)`,
		p.Name, p.NameShort)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("a product with this name or short name already exists")
	}

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO products (category, brand, name_short, name, colors, storages, images, tags)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at`,
		p.Category, p.Brand, p.NameShort, p.Name, p.Colors, p.Storages, p.Images, p.Tags,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("a product with this name or short name already exists")
		}
		return err
	}

	return tx.Commit()
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, p.ID); err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("product not found")
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET category = $1, brand = $2, name_short = $3, name = $4,
		    colors = $5, storages = $6, images = $7, tags = $8
		WHERE id = $9`,
		p.Category, p.Brand, p.NameShort, p.Name,
		p.Colors, p.Storages, p.Images, p.Tags, p.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("a product with this name or short name already exists")
		}
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// existence check raced with a concurrent delete
		return apperr.NotFound("product not found")
	}

	return tx.Commit()
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id); err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("product not found")
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperr.Conflict("product still has prices; delete them first")
		}
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("product not found")
	}

	return tx.Commit()
}
