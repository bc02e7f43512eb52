package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyDraft    = errors.New("order draft has no items")
)
