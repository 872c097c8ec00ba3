package database

import (
	"context"

	"github.com/mdouchement/catalog/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		// A blank ID means a new record: the client assigns a fresh one
		// along with the creation date.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// Ping performs a cheap read against the database to assert it is reachable.
		// It aborts when the given context expires.
		Ping(ctx context.Context) error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool

		ItemInteraction
	}

	// An ItemInteraction defines all the methods used to interact with item record(s).
	ItemInteraction interface {
		// FindItem returns the item for the given id (UUID).
		FindItem(id string) (*model.Item, error)
		// FindItems returns all the stored items, in store-native order.
		FindItems() ([]*model.Item, error)
		// DeleteItem deletes the item for the given id (UUID).
		// Deleting an unknown id is a no-op.
		DeleteItem(id string) error
	}
)
