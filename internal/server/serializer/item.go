package serializer

import "github.com/mdouchement/catalog/internal/model"

// Item serializes the render of an item.
func Item(m *model.Item) map[string]interface{} {
	return map[string]interface{}{
		"id":          m.ID,
		"name":        m.Name,
		"description": m.Description,
		"price":       m.Price,
		"createdDate": m.CreatedAt,
	}
}

// Items serializes the render of items.
func Items(m []*model.Item) []map[string]interface{} {
	items := make([]map[string]interface{}, len(m))
	for i, item := range m {
		items[i] = Item(item)
	}
	return items
}
