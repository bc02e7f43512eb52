package user

import "errors"

var (
	ErrAuthFailure  = errors.New("authentication failed")
	ErrNotSignedIn  = errors.New("no user signed in")
	ErrInvalidPhone = errors.New("invalid phone number")
)
