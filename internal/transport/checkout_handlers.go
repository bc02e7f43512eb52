package transport

import (
	"net/http"

	"tastebite-be/internal/checkout"
	"tastebite-be/internal/payment"
	"tastebite-be/internal/utils"
)

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.checkout.Quote(r.Context(), r.URL.Query().Get("address"))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, quote)
}

func (h *Handler) savePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Method payment.Method `json:"method"`
		Phone  string         `json:"phone"`
	}
	if err := decode(r, &body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.checkout.SavePaymentSelection(r.Context(), body.Method, body.Phone); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Address string               `json:"address"`
		Method  payment.Method       `json:"method"`
		Card    *payment.CardDetails `json:"card"`
		Phone   string               `json:"phone"`
		Email   string               `json:"email"`
	}
	if err := decode(r, &body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.checkout.PlaceOrder(r.Context(), checkout.PlaceOrderRequest{
		DeliveryAddress: body.Address,
		Method:          body.Method,
		Card:            body.Card,
		AirtelNum:       body.Phone,
		BuyerEmail:      body.Email,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, result)
}
