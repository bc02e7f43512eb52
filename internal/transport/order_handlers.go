package transport

import (
	"net/http"

	"tastebite-be/internal/utils"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.orders.List())
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) rateOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Rating int `json:"rating"`
	}
	if err := decode(r, &body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.orders.UpdateRating(r.Context(), r.PathValue("id"), body.Rating); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// orderRoute serves the tracking map. Routes are memoized per order so
// reopening the view does not hit the provider again.
func (h *Handler) orderRoute(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	if route, ok := h.routes.Get(o.ID); ok {
		utils.WriteJSON(w, http.StatusOK, route)
		return
	}

	route, err := h.gateway.RouteBetween(r.Context(), h.orders.RestaurantAddress(), o.DeliveryAddress)
	if err != nil {
		writeError(w, err)
		return
	}

	h.routes.Put(o.ID, route)
	utils.WriteJSON(w, http.StatusOK, route)
}

func (h *Handler) clearOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
