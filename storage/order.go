package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/glowify/ecommerce-api/models"
)

// CreateOrder snapshots the user's cart into a new pending order and clears
// the cart. The total sums the raw product price times quantity; the catalog
// discount is not applied here, matching the pricing behavior the storefront
// has always shown.
func (s *Store) CreateOrder(userID string, shipping models.Address, paymentMethod string) (models.Order, error) {
	if shipping == (models.Address{}) || paymentMethod == "" {
		return models.Order{}, ErrMissingFields
	}

	cart, err := s.GetResolvedCart(userID)
	if err != nil {
		return models.Order{}, err
	}
	if len(cart.Items) == 0 {
		return models.Order{}, ErrCartEmpty
	}

	var total float64
	for _, item := range cart.Items {
		total += item.Price * float64(item.Quantity)
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           append([]models.ResolvedCartItem(nil), cart.Items...),
		Total:           total,
		ShippingAddress: shipping,
		PaymentMethod:   paymentMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.orders.Update(func(orders []models.Order) ([]models.Order, bool, error) {
		return append(orders, order), true, nil
	})
	if err != nil {
		return models.Order{}, err
	}

	if err := s.ClearCart(userID); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// CancelOrder transitions an order to cancelled on behalf of its owner.
// Returns ErrNotOwner for anyone else and ErrTerminalStatus once the order
// is delivered or already cancelled.
func (s *Store) CancelOrder(userID, orderID string) (models.Order, error) {
	var cancelled models.Order
	err := s.orders.Update(func(orders []models.Order) ([]models.Order, bool, error) {
		for i := range orders {
			if orders[i].ID != orderID {
				continue
			}
			if orders[i].UserID != userID {
				return nil, false, ErrNotOwner
			}
			if orders[i].Status.Terminal() {
				return nil, false, ErrTerminalStatus
			}
			orders[i].Status = models.OrderStatusCancelled
			orders[i].UpdatedAt = time.Now().UTC()
			cancelled = orders[i]
			return orders, true, nil
		}
		return nil, false, ErrNotFound
	})
	return cancelled, err
}

// SetOrderStatus is the administrative transition. The new status only has
// to be a valid enum value; admins may move an order to any state as an
// escape hatch for corrections.
func (s *Store) SetOrderStatus(orderID, status string) (models.Order, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return models.Order{}, ErrInvalidStatus
	}

	var updated models.Order
	err = s.orders.Update(func(orders []models.Order) ([]models.Order, bool, error) {
		for i := range orders {
			if orders[i].ID == orderID {
				orders[i].Status = parsed
				orders[i].UpdatedAt = time.Now().UTC()
				updated = orders[i]
				return orders, true, nil
			}
		}
		return nil, false, ErrNotFound
	})
	return updated, err
}

// OrdersByUser returns the user's order history.
func (s *Store) OrdersByUser(userID string) ([]models.Order, error) {
	orders, err := s.orders.Load()
	if err != nil {
		return nil, err
	}
	out := []models.Order{}
	for _, o := range orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// AllOrders returns every order on record.
func (s *Store) AllOrders() ([]models.Order, error) {
	return s.orders.Load()
}

// OrderByID returns a single order or ErrNotFound.
func (s *Store) OrderByID(orderID string) (models.Order, error) {
	orders, err := s.orders.Load()
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}
