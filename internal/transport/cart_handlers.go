package transport

import (
	"net/http"
	"strconv"

	"tastebite-be/internal/utils"
)

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID int `json:"id"`
	}
	if err := decode(r, &body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.catalog.GetItem(body.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.cart.AddItem(item)
	utils.WriteJSON(w, http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteJSONError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	h.cart.RemoveItem(id)
	utils.WriteJSON(w, http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	utils.WriteJSON(w, http.StatusOK, h.cart.Snapshot())
}
