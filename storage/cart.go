package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/glowify/ecommerce-api/models"
)

// GetOrCreateCart returns the user's cart, creating and persisting an empty
// one on first access. Repeated calls never duplicate the cart row.
func (s *Store) GetOrCreateCart(userID string) (models.Cart, error) {
	var cart models.Cart
	err := s.carts.Update(func(carts []models.Cart) ([]models.Cart, bool, error) {
		for _, c := range carts {
			if c.UserID == userID {
				cart = c
				return carts, false, nil
			}
		}
		cart = models.Cart{
			UserID:    userID,
			Items:     []models.CartItem{},
			UpdatedAt: time.Now().UTC(),
		}
		return append(carts, cart), true, nil
	})
	return cart, err
}

// ResolveCart enriches each cart row with the current product data. Rows
// whose product no longer exists keep their product fields empty.
func (s *Store) ResolveCart(cart models.Cart) (models.ResolvedCart, error) {
	products, err := s.products.Load()
	if err != nil {
		return models.ResolvedCart{}, err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	resolved := models.ResolvedCart{
		UserID:    cart.UserID,
		Items:     make([]models.ResolvedCartItem, 0, len(cart.Items)),
		UpdatedAt: cart.UpdatedAt,
	}
	for _, item := range cart.Items {
		ri := models.ResolvedCartItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if p, ok := byID[item.ProductID]; ok {
			ri.Name = p.Name
			ri.Price = p.Price
			ri.Category = p.Category
			ri.Image = p.Image
			ri.Discount = p.Discount
			ri.Description = p.Description
			inStock, stock := p.InStock, p.Stock
			ri.InStock = &inStock
			ri.Stock = &stock
		}
		resolved.Items = append(resolved.Items, ri)
	}
	return resolved, nil
}

// GetResolvedCart is GetOrCreateCart followed by ResolveCart.
func (s *Store) GetResolvedCart(userID string) (models.ResolvedCart, error) {
	cart, err := s.GetOrCreateCart(userID)
	if err != nil {
		return models.ResolvedCart{}, err
	}
	return s.ResolveCart(cart)
}

// AddItem puts quantity units of a product into the user's cart. An existing
// row for the product has its quantity incremented; otherwise a new row is
// appended with a fresh synthetic id. Product existence is checked by the
// HTTP boundary before this is called.
func (s *Store) AddItem(userID, productID string, quantity int) (models.ResolvedCart, error) {
	err := s.carts.Update(func(carts []models.Cart) ([]models.Cart, bool, error) {
		idx := -1
		for i, c := range carts {
			if c.UserID == userID {
				idx = i
				break
			}
		}
		if idx == -1 {
			carts = append(carts, models.Cart{UserID: userID, Items: []models.CartItem{}})
			idx = len(carts) - 1
		}

		cart := &carts[idx]
		found := false
		for i, item := range cart.Items {
			if item.ProductID == productID {
				cart.Items[i].Quantity += quantity
				found = true
				break
			}
		}
		if !found {
			cart.Items = append(cart.Items, models.CartItem{
				ID:        productID + "-" + uuid.NewString(),
				ProductID: productID,
				Quantity:  quantity,
			})
		}
		cart.UpdatedAt = time.Now().UTC()
		return carts, true, nil
	})
	if err != nil {
		return models.ResolvedCart{}, err
	}
	return s.GetResolvedCart(userID)
}

// UpdateItem sets the absolute quantity of a cart row. A quantity of zero or
// less removes the row. Returns ErrNotFound when the user has no cart or the
// row id is absent from it.
func (s *Store) UpdateItem(userID, itemID string, quantity int) (models.ResolvedCart, error) {
	err := s.carts.Update(func(carts []models.Cart) ([]models.Cart, bool, error) {
		for i := range carts {
			if carts[i].UserID != userID {
				continue
			}
			cart := &carts[i]
			for j, item := range cart.Items {
				if item.ID != itemID {
					continue
				}
				if quantity <= 0 {
					cart.Items = append(cart.Items[:j], cart.Items[j+1:]...)
				} else {
					cart.Items[j].Quantity = quantity
				}
				cart.UpdatedAt = time.Now().UTC()
				return carts, true, nil
			}
			return nil, false, ErrNotFound
		}
		return nil, false, ErrNotFound
	})
	if err != nil {
		return models.ResolvedCart{}, err
	}
	return s.GetResolvedCart(userID)
}

// RemoveItem deletes a cart row. Same not-found conditions as UpdateItem.
func (s *Store) RemoveItem(userID, itemID string) (models.ResolvedCart, error) {
	return s.UpdateItem(userID, itemID, 0)
}

// ClearCart empties the user's cart. A missing cart is a no-op, not an
// error.
func (s *Store) ClearCart(userID string) error {
	return s.carts.Update(func(carts []models.Cart) ([]models.Cart, bool, error) {
		for i := range carts {
			if carts[i].UserID == userID {
				carts[i].Items = []models.CartItem{}
				carts[i].UpdatedAt = time.Now().UTC()
				return carts, true, nil
			}
		}
		return carts, false, nil
	})
}
