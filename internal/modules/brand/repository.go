package brand

import "context"

// Repository defines the interface for brand storage.
type Repository interface {
	List(ctx context.Context, category *int64) ([]*Brand, error)
	Create(ctx context.Context, b *Brand) error
	Update(ctx context.Context, b *Brand) error
	Delete(ctx context.Context, id int64) error
}
