package model

// An Item represents a catalog record.
// Description is set at creation time and is not touched by updates.
type Item struct {
	Base `storm:"inline"`

	Name        string  `json:"name" storm:"index"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
