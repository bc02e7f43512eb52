package checkout

import (
	"tastebite-be/internal/order"
	"tastebite-be/internal/payment"
)

// DeliveryCharge is the flat fee added to every order.
const DeliveryCharge = 10

// Quote is the deliverability answer for one address.
type Quote struct {
	DistanceKm      float64 `json:"distanceKm"`
	EstimateMinutes int     `json:"estimateMinutes"`
	Deliverable     bool    `json:"deliverable"`
	DeliveryCharge  int     `json:"deliveryCharge"`
}

// PlaceOrderRequest is the final submission. Method may be left empty to
// use the selection saved earlier in the session.
type PlaceOrderRequest struct {
	DeliveryAddress string
	Method          payment.Method
	Card            *payment.CardDetails
	AirtelNum       string
	BuyerEmail      string
}

// Result pairs the placed order with its payment receipt.
type Result struct {
	Order   *order.Order     `json:"order"`
	Receipt *payment.Receipt `json:"receipt"`
}
