package models

// Destination is seeded reference data; read-only at runtime.
type Destination struct {
	Code        string  `db:"code" json:"code"`
	Name        string  `db:"name" json:"name"`
	BasePrice   float64 `db:"base_price" json:"base_price"`
	Description string  `db:"description" json:"description"`
}
