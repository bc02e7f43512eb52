package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService()
	assert.NoError(t, err)
	return svc
}

func TestNewService(t *testing.T) {
	svc := newTestService(t)

	assert.Len(t, svc.Categories(), 4)
	assert.NotEmpty(t, svc.Items())
}

func TestGetItem(t *testing.T) {
	svc := newTestService(t)

	t.Run("Found", func(t *testing.T) {
		item, err := svc.GetItem(1)
		assert.NoError(t, err)
		assert.Equal(t, "Butter Chicken", item.Name)
		assert.Equal(t, 85, item.Price)
		assert.False(t, item.IsVeg)
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := svc.GetItem(999)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestItemsByCategory(t *testing.T) {
	svc := newTestService(t)

	items := svc.ItemsByCategory("beverages")
	assert.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, "beverages", item.Category)
	}

	assert.Empty(t, svc.ItemsByCategory("no-such-category"))
}

func TestFilter(t *testing.T) {
	svc := newTestService(t)
	all := svc.Items()

	t.Run("Veg only", func(t *testing.T) {
		out := svc.Filter(all, Filters{Type: TypeVeg})
		assert.NotEmpty(t, out)
		for _, item := range out {
			assert.True(t, item.IsVeg)
		}
	})

	t.Run("Non-veg only", func(t *testing.T) {
		out := svc.Filter(all, Filters{Type: TypeNonVeg})
		for _, item := range out {
			assert.False(t, item.IsVeg)
		}
	})

	t.Run("Spice level", func(t *testing.T) {
		out := svc.Filter(all, Filters{SpiceLevel: "hot"})
		assert.NotEmpty(t, out)
		for _, item := range out {
			assert.Equal(t, SpiceHot, item.SpiceLevel)
		}
	})

	t.Run("Sort price low to high", func(t *testing.T) {
		out := svc.Filter(all, Filters{Sort: SortPriceLow})
		for i := 1; i < len(out); i++ {
			assert.LessOrEqual(t, out[i-1].Price, out[i].Price)
		}
	})

	t.Run("Sort price high to low", func(t *testing.T) {
		out := svc.Filter(all, Filters{Sort: SortPriceHigh})
		for i := 1; i < len(out); i++ {
			assert.GreaterOrEqual(t, out[i-1].Price, out[i].Price)
		}
	})

	t.Run("Recommended keeps catalog order", func(t *testing.T) {
		out := svc.Filter(all, Filters{Type: TypeAll, SpiceLevel: "all", Sort: SortRecommended})
		assert.Equal(t, all, out)
	})
}

func TestSearch(t *testing.T) {
	svc := newTestService(t)

	assert.NotEmpty(t, svc.Search("chai"))
	assert.NotEmpty(t, svc.Search("STREET food"))
	assert.Empty(t, svc.Search("pizza"))
	assert.Empty(t, svc.Search("  "))
}
