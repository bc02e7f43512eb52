package payment

import "errors"

var (
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrInvalidExpiry     = errors.New("invalid or past expiry date")
	ErrInvalidCVC        = errors.New("invalid cvc")
	ErrInvalidPhone      = errors.New("invalid mobile money phone number")
	ErrUnknownMethod     = errors.New("unknown payment method")
	ErrMissingCard       = errors.New("card details required")
)
