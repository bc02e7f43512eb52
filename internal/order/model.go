package order

import (
	"time"

	"tastebite-be/internal/cart"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

// transitions is the fixed lifecycle: pending -> preparing ->
// out-for-delivery -> delivered. Delivered is terminal.
var transitions = map[Status]Status{
	StatusPending:        StatusPreparing,
	StatusPreparing:      StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

// Next returns the successor status and whether one exists.
func (s Status) Next() (Status, bool) {
	next, ok := transitions[s]
	return next, ok
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// Order is owned exclusively by the Store; tracking consumers read copies.
type Order struct {
	ID                string      `json:"id"`
	Items             []cart.Item `json:"items"`
	Total             int         `json:"total"`
	PlacedAt          time.Time   `json:"date"`
	Status            Status      `json:"status"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
	Rating            *int        `json:"rating,omitempty"`
	DeliveryCharge    int         `json:"deliveryCharge"`
	DeliveryAddress   string      `json:"deliveryAddress"`
}

// Draft carries everything checkout knows at placement time; the store fills
// in id, timestamps, status and the delivery estimate.
type Draft struct {
	Items           []cart.Item
	ItemsTotal      int
	DeliveryCharge  int
	DeliveryAddress string
}
