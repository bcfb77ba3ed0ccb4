// Package storage persists every entity kind as one flat JSON array file and
// implements the cart and order logic on top of that store.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection is a JSON-array file holding every record of one entity kind.
// Reads and writes always cover the whole file. A mutex serializes mutations
// within the process; there is no cross-process locking, so concurrent
// processes touching the same file are last-writer-wins.
type Collection[T any] struct {
	mu   sync.Mutex
	path string
	seed []T
}

// NewCollection binds a collection to a file path. seed, if non-nil, is
// written on first access when the file does not exist yet.
func NewCollection[T any](path string, seed []T) *Collection[T] {
	return &Collection[T]{path: path, seed: seed}
}

// Load returns every record in the collection. A missing file materializes
// the seed (or an empty collection); an unparseable file is a fatal read
// error.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Update applies fn to the full record list under the collection lock and
// persists the result when fn reports a change.
func (c *Collection[T]) Update(fn func(items []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	items, changed, err := fn(items)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return c.save(items)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		items := c.seed
		if items == nil {
			items = []T{}
		}
		if err := c.save(items); err != nil {
			return nil, err
		}
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save writes the whole collection through a temp file and rename so a
// failed write never truncates the previous state.
func (c *Collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
