package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glowify/ecommerce-api/models"
	"github.com/glowify/ecommerce-api/storage"
)

var testAddress = models.Address{
	Street:     "12 Rose Street",
	City:       "Springfield",
	State:      "CA",
	PostalCode: "90210",
	Country:    "US",
}

func TestCreateOrderEmptyCartRejected(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateOrder("user-1", testAddress, "card")
	require.ErrorIs(t, err, storage.ErrCartEmpty)

	orders, err := store.AllOrders()
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestCreateOrderMissingFieldsRejected(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateOrder("user-1", models.Address{}, "card")
	require.ErrorIs(t, err, storage.ErrMissingFields)

	_, err = store.CreateOrder("user-1", testAddress, "")
	require.ErrorIs(t, err, storage.ErrMissingFields)
}

func TestCreateOrderTotalsAndClearsCart(t *testing.T) {
	store := newTestStore(t)

	ten, err := store.CreateProduct(models.Product{Name: "Ten", Price: 10, Category: "Test", Discount: 50, InStock: true, Stock: 5})
	require.NoError(t, err)
	twentyFive, err := store.CreateProduct(models.Product{Name: "TwentyFive", Price: 25, Category: "Test", InStock: true, Stock: 5})
	require.NoError(t, err)

	_, err = store.AddItem("user-1", ten.ID, 2)
	require.NoError(t, err)
	_, err = store.AddItem("user-1", twentyFive.ID, 1)
	require.NoError(t, err)

	order, err := store.CreateOrder("user-1", testAddress, "card")
	require.NoError(t, err)

	// Raw price times quantity; the catalog discount is not applied.
	require.Equal(t, float64(45), order.Total)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)

	cart, err := store.GetResolvedCart("user-1")
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestOrderSnapshotIsImmutable(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddItem("user-1", "1", 1)
	require.NoError(t, err)
	order, err := store.CreateOrder("user-1", testAddress, "cod")
	require.NoError(t, err)

	// Later cart activity must not bleed into the stored order.
	_, err = store.AddItem("user-1", "2", 3)
	require.NoError(t, err)

	stored, err := store.OrderByID(order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	require.Equal(t, "1", stored.Items[0].ProductID)
}

func TestCancelOrderLifecycle(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddItem("user-1", "1", 1)
	require.NoError(t, err)
	order, err := store.CreateOrder("user-1", testAddress, "card")
	require.NoError(t, err)

	cancelled, err := store.CancelOrder("user-1", order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	// Cancelled is terminal.
	_, err = store.CancelOrder("user-1", order.ID)
	require.ErrorIs(t, err, storage.ErrTerminalStatus)
}

func TestCancelDeliveredOrderRejected(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddItem("user-1", "1", 1)
	require.NoError(t, err)
	order, err := store.CreateOrder("user-1", testAddress, "card")
	require.NoError(t, err)

	_, err = store.SetOrderStatus(order.ID, "delivered")
	require.NoError(t, err)

	_, err = store.CancelOrder("user-1", order.ID)
	require.ErrorIs(t, err, storage.ErrTerminalStatus)
}

func TestCancelOrderOwnershipEnforced(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddItem("user-1", "1", 1)
	require.NoError(t, err)
	order, err := store.CreateOrder("user-1", testAddress, "card")
	require.NoError(t, err)

	_, err = store.CancelOrder("someone-else", order.ID)
	require.ErrorIs(t, err, storage.ErrNotOwner)

	_, err = store.CancelOrder("user-1", "no-such-order")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSetOrderStatusValidation(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddItem("user-1", "1", 1)
	require.NoError(t, err)
	order, err := store.CreateOrder("user-1", testAddress, "card")
	require.NoError(t, err)

	_, err = store.SetOrderStatus(order.ID, "bogus")
	require.ErrorIs(t, err, storage.ErrInvalidStatus)

	stored, err := store.OrderByID(order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, stored.Status)

	// Admin transitions only validate enum membership; any valid value is
	// accepted regardless of the current state.
	updated, err := store.SetOrderStatus(order.ID, "shipped")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, updated.Status)

	updated, err = store.SetOrderStatus(order.ID, "pending")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, updated.Status)
}

func TestOrdersByUser(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddItem("user-1", "1", 1)
	require.NoError(t, err)
	_, err = store.CreateOrder("user-1", testAddress, "card")
	require.NoError(t, err)

	_, err = store.AddItem("user-2", "2", 1)
	require.NoError(t, err)
	_, err = store.CreateOrder("user-2", testAddress, "cod")
	require.NoError(t, err)

	mine, err := store.OrdersByUser("user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "user-1", mine[0].UserID)

	all, err := store.AllOrders()
	require.NoError(t, err)
	require.Len(t, all, 2)
}
