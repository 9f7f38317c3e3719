package status

import "context"

// Status is a graded condition used to version prices: phone_status
// grades the device, battery_status grades the battery. Both tables
// share this shape.
type Status struct {
	ID          int64  `db:"id" json:"id"`
	State       string `db:"state" json:"state"`
	Description string `db:"description" json:"description"`
}

// Repository defines the interface for one status table.
type Repository interface {
	List(ctx context.Context) ([]*Status, error)
	GetByID(ctx context.Context, id int64) (*Status, error)
}
