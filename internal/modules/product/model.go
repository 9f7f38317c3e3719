package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is a phone model in the catalog. The list columns live in
// Postgres array columns, so the pq array types scan them directly.
type Product struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	Category  int64          `db:"category" json:"category"`
	Brand     int64          `db:"brand" json:"brand"`
	NameShort string         `db:"name_short" json:"name_short"`
	Name      string         `db:"name" json:"name"`
	Colors    pq.StringArray `db:"colors" json:"colors"`
	Storages  pq.Int64Array  `db:"storages" json:"storages"`
	Images    pq.StringArray `db:"images" json:"images"`
	Tags      pq.StringArray `db:"tags" json:"tags"`
	Prices    []PriceEntry   `db:"-" json:"prices"`
}

// PriceEntry is one row of the per-product price list: the price rows
// joined against phone_status for the human-readable state.
type PriceEntry struct {
	Status string  `db:"status" json:"status"`
	Price  float64 `db:"price" json:"price"`
}
