package models

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"` // pre-discount price
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Discount    float64   `json:"discount"` // percent, 0-100
	Description string    `json:"description"`
	InStock     bool      `json:"inStock"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DisplayPrice is the discounted price shown in the catalog. Order totals
// intentionally use the raw Price instead (see storage.CreateOrder).
func (p Product) DisplayPrice() float64 {
	return p.Price * (1 - p.Discount/100)
}
