package price

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for price storage.
type Repository interface {
	List(ctx context.Context) ([]*Price, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*Price, error)
	Create(ctx context.Context, p *Price) error
	UpdateByProductStatus(ctx context.Context, p *Price) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error
}
