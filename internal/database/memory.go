package database

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/mdouchement/catalog/internal/model"
	"github.com/pkg/errors"
)

// ErrNoRecord is returned by the in-memory client when a record is absent.
var ErrNoRecord = errors.New("no record found")

// mem is a transient Client used by test harnesses.
// It must never back a deployment.
type mem struct {
	mu     sync.RWMutex
	closed bool
	items  map[string]model.Item
}

// MemOpen returns an in-memory database client.
func MemOpen() Client {
	return &mem{
		items: map[string]model.Item{},
	}
}

// Save inserts or updates the entry in database with the given model.
func (c *mem) Save(m model.Model) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New("database is closed")
	}

	item, ok := m.(*model.Item)
	if !ok {
		return errors.Errorf("unsupported model %T", m)
	}

	t := time.Now().UTC()
	item.SetUpdatedAt(t)

	if item.ID == "" {
		item.SetID(uuid.Must(uuid.NewV4()).String())
		item.SetCreatedAt(t)
	}

	c.items[item.ID] = *item
	return nil
}

// Delete deletes the entry in database with the given model.
func (c *mem) Delete(m model.Model) error {
	return c.DeleteItem(m.GetID())
}

// Close the database.
func (c *mem) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	return nil
}

// Ping reports whether the client is still usable.
func (c *mem) Ping(_ context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return errors.New("database is closed")
	}
	return nil
}

// IsNotFound returns true if err is a not found error.
func (c *mem) IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNoRecord
}

// FindItem returns the item for the given id (UUID).
func (c *mem) FindItem(id string) (*model.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, errors.Wrap(ErrNoRecord, "could not find item")
	}
	return &item, nil
}

// FindItems returns all the stored items, in store-native order.
func (c *mem) FindItems() ([]*model.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]*model.Item, 0, len(c.items))
	for id := range c.items {
		item := c.items[id]
		items = append(items, &item)
	}
	return items, nil
}

// DeleteItem deletes the item for the given id (UUID).
func (c *mem) DeleteItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, id)
	return nil
}
