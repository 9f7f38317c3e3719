package color

import "context"

// Color is a selectable phone color label.
type Color struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Repository defines the interface for color storage.
type Repository interface {
	List(ctx context.Context) ([]*Color, error)
	GetByID(ctx context.Context, id int64) (*Color, error)
	Create(ctx context.Context, c *Color) error
}
