package review

import (
	"context"

	"github.com/google/uuid"
)

// Review is a customer review joined with the reviewed product's
// short name and the reviewer's name. Reviews are written by another
// system; this API only lists them.
type Review struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Stars     float64   `db:"stars" json:"stars"`
	Comment   string    `db:"comment" json:"comment"`
	Image     string    `db:"image" json:"image"`
	ProductID uuid.UUID `db:"product_id" json:"product_id"`
	Model     string    `db:"model" json:"model"`
	UserName  string    `db:"user_name" json:"user_name"`
}

// Repository defines the interface for review storage.
type Repository interface {
	List(ctx context.Context) ([]*Review, error)
}
