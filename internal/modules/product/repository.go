package product

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows a product listing. A nil/empty field means "no
// constraint". Tags match by set intersection: a product qualifies
// when it shares at least one tag with the filter.
type Filter struct {
	Category *int64
	Tags     []string
}

// Repository defines the interface for product storage.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, f Filter) ([]*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
