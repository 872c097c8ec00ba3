package database_test

import (
	"context"
	"testing"

	"github.com/mdouchement/catalog/internal/database"
	"github.com/mdouchement/catalog/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMemSave(t *testing.T) {
	db := database.MemOpen()
	defer db.Close()

	item := &model.Item{
		Name:        "Potion",
		Description: "Restores 20 HP",
		Price:       9.99,
	}
	assert.NoError(t, db.Save(item))
	assert.NotEmpty(t, item.ID)
	assert.NotNil(t, item.CreatedAt)

	found, err := db.FindItem(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, item.Name, found.Name)
	assert.Equal(t, item.Description, found.Description)
	assert.Equal(t, item.Price, found.Price)
}

func TestMemSaveUnsupportedModel(t *testing.T) {
	db := database.MemOpen()
	defer db.Close()

	base := &model.Base{}
	assert.Error(t, db.Save(base))

	// The rejected model must not be mutated.
	assert.Empty(t, base.ID)
	assert.Nil(t, base.CreatedAt)
	assert.Nil(t, base.UpdatedAt)
}

func TestMemFindItem(t *testing.T) {
	db := database.MemOpen()
	defer db.Close()

	_, err := db.FindItem("fbb55061-47ec-4d23-a2b5-e7b53bbbe1a1")
	assert.Error(t, err)
	assert.True(t, db.IsNotFound(err))
}

func TestMemFindItems(t *testing.T) {
	db := database.MemOpen()
	defer db.Close()

	items, err := db.FindItems()
	assert.NoError(t, err)
	assert.Empty(t, items)

	for _, name := range []string{"Potion", "Antidote", "Hi-Potion"} {
		assert.NoError(t, db.Save(&model.Item{Name: name}))
	}

	items, err = db.FindItems()
	assert.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestMemDeleteItem(t *testing.T) {
	db := database.MemOpen()
	defer db.Close()

	assert.NoError(t, db.DeleteItem("fbb55061-47ec-4d23-a2b5-e7b53bbbe1a1"))

	item := &model.Item{Name: "Potion"}
	assert.NoError(t, db.Save(item))
	assert.NoError(t, db.DeleteItem(item.ID))

	_, err := db.FindItem(item.ID)
	assert.True(t, db.IsNotFound(err))
}

func TestMemPing(t *testing.T) {
	db := database.MemOpen()

	assert.NoError(t, db.Ping(context.Background()))

	assert.NoError(t, db.Close())
	assert.Error(t, db.Ping(context.Background()))
}
