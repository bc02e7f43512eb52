package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"tastebite-be/internal/cart"
	"tastebite-be/internal/catalog"
	"tastebite-be/internal/checkout"
	"tastebite-be/internal/geo"
	"tastebite-be/internal/order"
	"tastebite-be/internal/payment"
	"tastebite-be/internal/user"
	"tastebite-be/internal/utils"
)

// Handler holds every service the HTTP surface fans out to.
type Handler struct {
	catalog  catalog.Service
	cart     *cart.Cart
	orders   *order.Store
	users    user.Service
	checkout checkout.Service
	gateway  *geo.Gateway
	routes   *geo.RouteCache
}

func NewHandler(
	cat catalog.Service,
	c *cart.Cart,
	orders *order.Store,
	users user.Service,
	co checkout.Service,
	gateway *geo.Gateway,
	routes *geo.RouteCache,
) *Handler {
	return &Handler{
		catalog:  cat,
		cart:     c,
		orders:   orders,
		users:    users,
		checkout: co,
		gateway:  gateway,
		routes:   routes,
	}
}

// Routes wires every endpoint onto a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/categories", h.listCategories)
	mux.HandleFunc("GET /api/items", h.listItems)
	mux.HandleFunc("GET /api/items/{id}", h.getItem)

	mux.HandleFunc("GET /api/cart", h.getCart)
	mux.HandleFunc("POST /api/cart/items", h.addCartItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.removeCartItem)
	mux.HandleFunc("DELETE /api/cart", h.clearCart)

	mux.HandleFunc("GET /api/checkout/quote", h.quote)
	mux.HandleFunc("POST /api/checkout/payment-method", h.savePaymentMethod)
	mux.HandleFunc("POST /api/checkout", h.placeOrder)

	mux.HandleFunc("GET /api/orders", h.listOrders)
	mux.HandleFunc("GET /api/orders/{id}", h.getOrder)
	mux.HandleFunc("POST /api/orders/{id}/rating", h.rateOrder)
	mux.HandleFunc("GET /api/orders/{id}/route", h.orderRoute)
	mux.HandleFunc("DELETE /api/orders", h.clearOrders)

	mux.HandleFunc("GET /api/address/suggest", h.suggestAddress)

	mux.HandleFunc("POST /api/auth/signup", h.signUp)
	mux.HandleFunc("POST /api/auth/login", h.login)
	mux.HandleFunc("POST /api/auth/logout", h.logout)
	mux.HandleFunc("GET /api/profile", h.getProfile)
	mux.HandleFunc("PUT /api/profile", h.updateProfile)

	return mux
}

func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, user.ErrAuthFailure),
		errors.Is(err, user.ErrNotSignedIn):
		utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, cart.ErrCartEmpty),
		errors.Is(err, order.ErrInvalidRating),
		errors.Is(err, order.ErrEmptyDraft),
		errors.Is(err, user.ErrInvalidPhone),
		errors.Is(err, checkout.ErrMissingAddress),
		errors.Is(err, checkout.ErrNoPaymentSelection),
		errors.Is(err, payment.ErrInvalidCardNumber),
		errors.Is(err, payment.ErrInvalidExpiry),
		errors.Is(err, payment.ErrInvalidCVC),
		errors.Is(err, payment.ErrInvalidPhone),
		errors.Is(err, payment.ErrMissingCard),
		errors.Is(err, payment.ErrUnknownMethod):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, checkout.ErrNotDeliverable):
		utils.WriteJSONError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, geo.ErrRouteUnavailable):
		utils.WriteJSONError(w, err.Error(), http.StatusBadGateway)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
