package models

import "time"

// Cart holds a user's pending items. One cart per user, created lazily on
// first access and emptied when an order is placed.
type Cart struct {
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID        string `json:"id"` // synthetic row id, distinct from the product id
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ResolvedCart is a cart with its items enriched with live product data for
// presentation.
type ResolvedCart struct {
	UserID    string             `json:"userId"`
	Items     []ResolvedCartItem `json:"items"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ResolvedCartItem merges a cart row with its product. The id is the cart
// row's id so that client-side update/remove addresses the cart, not the
// catalog. When the product no longer exists the product fields stay empty;
// that is accepted, not an error.
type ResolvedCartItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	Quantity    int     `json:"quantity"`
	Name        string  `json:"name,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Category    string  `json:"category,omitempty"`
	Image       string  `json:"image,omitempty"`
	Discount    float64 `json:"discount,omitempty"`
	Description string  `json:"description,omitempty"`
	InStock     *bool   `json:"inStock,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
}
