package cart

import (
	"sync"

	"tastebite-be/internal/catalog"
)

// Cart accumulates items ahead of checkout. It keeps at most one line per
// food-item id, preserves insertion order, and maintains the running total
// incrementally so it always equals sum(price * quantity).
type Cart struct {
	mu    sync.Mutex
	items []Item
	total int
}

func New() *Cart {
	return &Cart{}
}

// AddItem puts one unit of the item in the cart, incrementing the quantity
// when a line for the item already exists.
func (c *Cart) AddItem(item catalog.FoodItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			c.total += item.Price
			return
		}
	}

	c.items = append(c.items, Item{FoodItem: item, Quantity: 1})
	c.total += item.Price
}

// RemoveItem takes one unit of the item out of the cart. A line at quantity
// one is dropped entirely; an absent id is a no-op.
func (c *Cart) RemoveItem(itemID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}

		c.total -= c.items[i].Price
		if c.items[i].Quantity == 1 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity--
		}
		return
	}
}

// Clear resets the cart to empty.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.total = 0
}

// Snapshot returns a copy of the current items and total.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Item, len(c.items))
	copy(items, c.items)
	return Snapshot{Items: items, Total: c.total}
}

// Total returns the running total in minor currency units.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}
