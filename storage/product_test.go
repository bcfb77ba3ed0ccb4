package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glowify/ecommerce-api/models"
	"github.com/glowify/ecommerce-api/storage"
)

func TestCatalogSeededOnFirstAccess(t *testing.T) {
	store := newTestStore(t)

	products, err := store.AllProducts()
	require.NoError(t, err)
	require.Len(t, products, 4)

	p, err := store.ProductByID("1")
	require.NoError(t, err)
	require.Equal(t, "Rose Lip Balm", p.Name)
}

func TestProductsByCategory(t *testing.T) {
	store := newTestStore(t)

	lips, err := store.ProductsByCategory("lips")
	require.NoError(t, err)
	require.Len(t, lips, 2)

	none, err := store.ProductsByCategory("Hardware")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestSearchProducts(t *testing.T) {
	store := newTestStore(t)

	hits, err := store.SearchProducts("serum")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "Hydrating Serum", hits[0].Name)

	hits, err = store.SearchProducts("glow")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
}

func TestCreateUpdateDeleteProduct(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateProduct(models.Product{Name: "Night Cream", Price: 22, Category: "Skincare", InStock: true, Stock: 10})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	price := 19.5
	updated, err := store.UpdateProduct(created.ID, storage.ProductUpdate{Price: &price})
	require.NoError(t, err)
	require.Equal(t, 19.5, updated.Price)
	require.Equal(t, "Night Cream", updated.Name)

	require.NoError(t, store.DeleteProduct(created.ID))
	_, err = store.ProductByID(created.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.ErrorIs(t, store.DeleteProduct(created.ID), storage.ErrNotFound)
}

func TestDisplayPriceAppliesDiscount(t *testing.T) {
	p := models.Product{Price: 20, Discount: 25}
	require.Equal(t, float64(15), p.DisplayPrice())
}
