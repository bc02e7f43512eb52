package checkout

import "errors"

var (
	ErrNotDeliverable     = errors.New("address is outside the delivery range")
	ErrMissingAddress     = errors.New("delivery address is required")
	ErrNoPaymentSelection = errors.New("no payment method selected")
)
