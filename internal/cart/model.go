package cart

import "tastebite-be/internal/catalog"

// Item is a catalog entry plus the quantity currently in the cart.
type Item struct {
	catalog.FoodItem
	Quantity int `json:"quantity"`
}

// Snapshot is an immutable view of the cart: items in insertion order plus
// the running total.
type Snapshot struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}
