package brand

// Brand is a phone manufacturer shown in the storefront, grouped by
// catalog category.
type Brand struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	HeaderImage string `db:"header_image" json:"header_image"`
	Category    int64  `db:"category" json:"category"`
}
