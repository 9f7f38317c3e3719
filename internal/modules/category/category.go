package category

import "context"

// Category is a top-level catalog grouping (phones, tablets, ...).
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Repository defines the interface for category storage. Categories
// are managed out of band; the API only reads them.
type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
}
