package transport

import (
	"net/http"
	"strconv"

	"tastebite-be/internal/catalog"
	"tastebite-be/internal/utils"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.catalog.Categories())
}

// listItems serves category browsing, filtering, sorting and search in one
// endpoint. A search query takes precedence over the category listing.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var items []catalog.FoodItem
	if query := q.Get("q"); query != "" {
		items = h.catalog.Search(query)
	} else if categoryID := q.Get("category"); categoryID != "" {
		items = h.catalog.ItemsByCategory(categoryID)
	} else {
		items = h.catalog.Items()
	}

	filters := catalog.Filters{
		Type:       catalog.TypeFilter(orDefault(q.Get("type"), string(catalog.TypeAll))),
		SpiceLevel: orDefault(q.Get("spice"), "all"),
		Sort:       catalog.SortOption(orDefault(q.Get("sort"), string(catalog.SortRecommended))),
	}

	utils.WriteJSON(w, http.StatusOK, h.catalog.Filter(items, filters))
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteJSONError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := h.catalog.GetItem(id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) suggestAddress(w http.ResponseWriter, r *http.Request) {
	partial := r.URL.Query().Get("q")
	if partial == "" {
		utils.WriteJSON(w, http.StatusOK, []string{})
		return
	}

	suggestions, err := h.gateway.Suggest(r.Context(), partial)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, suggestions)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
