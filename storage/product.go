package storage

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glowify/ecommerce-api/models"
)

// AllProducts returns the full catalog.
func (s *Store) AllProducts() ([]models.Product, error) {
	return s.products.Load()
}

// ProductByID returns a single product or ErrNotFound.
func (s *Store) ProductByID(id string) (models.Product, error) {
	products, err := s.products.Load()
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// ProductsByCategory filters the catalog by category, case-insensitively.
func (s *Store) ProductsByCategory(category string) ([]models.Product, error) {
	products, err := s.products.Load()
	if err != nil {
		return nil, err
	}
	out := []models.Product{}
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

// SearchProducts matches the term against product name, category and
// description.
func (s *Store) SearchProducts(term string) ([]models.Product, error) {
	products, err := s.products.Load()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	out := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

// CreateProduct adds a catalog entry, generating an id when none is given.
func (s *Store) CreateProduct(product models.Product) (models.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	err := s.products.Update(func(products []models.Product) ([]models.Product, bool, error) {
		return append(products, product), true, nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// ProductUpdate carries the fields an admin may change on a product.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Discount    *float64 `json:"discount"`
	Description *string  `json:"description"`
	InStock     *bool    `json:"inStock"`
	Stock       *int     `json:"stock"`
}

// UpdateProduct applies a partial edit to a catalog entry.
func (s *Store) UpdateProduct(id string, update ProductUpdate) (models.Product, error) {
	var updated models.Product
	err := s.products.Update(func(products []models.Product) ([]models.Product, bool, error) {
		for i := range products {
			if products[i].ID != id {
				continue
			}
			p := &products[i]
			if update.Name != nil {
				p.Name = *update.Name
			}
			if update.Price != nil {
				p.Price = *update.Price
			}
			if update.Category != nil {
				p.Category = *update.Category
			}
			if update.Image != nil {
				p.Image = *update.Image
			}
			if update.Discount != nil {
				p.Discount = *update.Discount
			}
			if update.Description != nil {
				p.Description = *update.Description
			}
			if update.InStock != nil {
				p.InStock = *update.InStock
			}
			if update.Stock != nil {
				p.Stock = *update.Stock
			}
			p.UpdatedAt = time.Now().UTC()
			updated = *p
			return products, true, nil
		}
		return nil, false, ErrNotFound
	})
	return updated, err
}

// DeleteProduct removes a catalog entry.
func (s *Store) DeleteProduct(id string) error {
	return s.products.Update(func(products []models.Product) ([]models.Product, bool, error) {
		for i := range products {
			if products[i].ID == id {
				return append(products[:i], products[i+1:]...), true, nil
			}
		}
		return nil, false, ErrNotFound
	})
}

// defaultProducts seeds the catalog the first time the store runs against an
// empty data directory.
func defaultProducts() []models.Product {
	now := time.Now().UTC()
	return []models.Product{
		{
			ID:          "1",
			Name:        "Rose Lip Balm",
			Price:       15,
			Category:    "Lips",
			Image:       "/uploads/products/rose-lip-balm.jpg",
			Discount:    20,
			Description: "Moisturizing lip balm with rose extract for soft, hydrated lips.",
			InStock:     true,
			Stock:       50,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Hydrating Serum",
			Price:       25,
			Category:    "Skincare",
			Image:       "/uploads/products/hydrating-serum.jpg",
			Discount:    35,
			Description: "Deep hydrating serum for glowing, radiant skin.",
			InStock:     true,
			Stock:       30,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Glow Foundation",
			Price:       30,
			Category:    "Makeup",
			Image:       "/uploads/products/glow-foundation.jpg",
			Discount:    40,
			Description: "Lightweight foundation that gives you a natural glow.",
			InStock:     true,
			Stock:       40,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "4",
			Name:        "Matte Lipstick",
			Price:       18,
			Category:    "Lips",
			Image:       "/uploads/products/matte-lipstick.jpg",
			Discount:    25,
			Description: "Long-lasting matte lipstick in various shades.",
			InStock:     true,
			Stock:       60,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
