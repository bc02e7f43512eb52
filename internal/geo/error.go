package geo

import "errors"

var (
	// ErrRouteUnavailable is surfaced when either address fails to geocode
	// or no drivable route exists between them. Unlike distance lookups,
	// route lookups do not degrade to a default.
	ErrRouteUnavailable = errors.New("delivery route unavailable")

	ErrNoGeocodeResult = errors.New("no geocode results for address")
)
