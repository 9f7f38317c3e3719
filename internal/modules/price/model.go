package price

import "github.com/google/uuid"

// Price is one offer for a product in a given phone state. At most
// one row exists per (product, status) pair.
type Price struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ProductID uuid.UUID `db:"id_product" json:"id_product"`
	Status    int64     `db:"status" json:"status"`
	Price     float64   `db:"price" json:"price"`
}
