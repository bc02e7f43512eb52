package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed seed.json
var seedData []byte

var ErrItemNotFound = errors.New("food item not found")

// Service serves the static menu. The catalog is loaded once at startup and
// never mutated afterwards.
type Service interface {
	Categories() []Category
	Items() []FoodItem
	ItemsByCategory(categoryID string) []FoodItem
	GetItem(id int) (FoodItem, error)
	Filter(items []FoodItem, filters Filters) []FoodItem
	Search(query string) []FoodItem
}

type service struct {
	categories []Category
	items      []FoodItem
	byID       map[int]FoodItem
}

type seed struct {
	Categories []Category `json:"categories"`
	Items      []FoodItem `json:"items"`
}

// NewService parses the embedded seed and indexes items by id.
func NewService() (Service, error) {
	var s seed
	if err := json.Unmarshal(seedData, &s); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}

	byID := make(map[int]FoodItem, len(s.Items))
	for _, item := range s.Items {
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate food item id %d in catalog seed", item.ID)
		}
		byID[item.ID] = item
	}

	return &service{
		categories: s.Categories,
		items:      s.Items,
		byID:       byID,
	}, nil
}

func (s *service) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *service) Items() []FoodItem {
	out := make([]FoodItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *service) ItemsByCategory(categoryID string) []FoodItem {
	var out []FoodItem
	for _, item := range s.items {
		if item.Category == categoryID {
			out = append(out, item)
		}
	}
	return out
}

func (s *service) GetItem(id int) (FoodItem, error) {
	item, ok := s.byID[id]
	if !ok {
		return FoodItem{}, ErrItemNotFound
	}
	return item, nil
}

// Filter narrows by type and spice level, then orders by price when asked.
// "recommended" keeps catalog order.
func (s *service) Filter(items []FoodItem, filters Filters) []FoodItem {
	out := make([]FoodItem, 0, len(items))
	for _, item := range items {
		if filters.Type == TypeVeg && !item.IsVeg {
			continue
		}
		if filters.Type == TypeNonVeg && item.IsVeg {
			continue
		}
		if filters.SpiceLevel != "" && filters.SpiceLevel != "all" && string(item.SpiceLevel) != filters.SpiceLevel {
			continue
		}
		out = append(out, item)
	}

	switch filters.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	return out
}

func (s *service) Search(query string) []FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []FoodItem
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) {
			out = append(out, item)
		}
	}
	return out
}
