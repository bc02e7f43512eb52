package catalog

type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "mild"
	SpiceMedium SpiceLevel = "medium"
	SpiceHot    SpiceLevel = "hot"
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// FoodItem is an immutable catalog entry. Price is in minor currency units.
type FoodItem struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Price       int        `json:"price"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	IsVeg       bool       `json:"isVeg"`
	SpiceLevel  SpiceLevel `json:"spiceLevel"`
}

type TypeFilter string

const (
	TypeAll    TypeFilter = "all"
	TypeVeg    TypeFilter = "veg"
	TypeNonVeg TypeFilter = "non-veg"
)

type SortOption string

const (
	SortRecommended SortOption = "recommended"
	SortPriceLow    SortOption = "price-low"
	SortPriceHigh   SortOption = "price-high"
)

// Filters narrows and orders a catalog listing. The zero-ish value
// ("all"/"all"/"recommended") leaves the listing untouched.
type Filters struct {
	Type       TypeFilter
	SpiceLevel string // "all" or a SpiceLevel value
	Sort       SortOption
}
