package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glowify/ecommerce-api/models"
)

// Store bundles the four entity collections behind one injectable handle.
// Every controller receives a *Store the way a DB handle would be passed, so
// a transactional backend can replace the file store without touching the
// cart/order/user logic.
type Store struct {
	users    *Collection[models.User]
	products *Collection[models.Product]
	carts    *Collection[models.Cart]
	orders   *Collection[models.Order]
}

// Open creates the data directory if needed and binds the collections. The
// product collection is seeded with the default catalog on first access.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{
		users:    NewCollection[models.User](filepath.Join(dataDir, "users.json"), nil),
		products: NewCollection(filepath.Join(dataDir, "products.json"), defaultProducts()),
		carts:    NewCollection[models.Cart](filepath.Join(dataDir, "carts.json"), nil),
		orders:   NewCollection[models.Order](filepath.Join(dataDir, "orders.json"), nil),
	}, nil
}
