package geo

import "context"

// Point is an immutable geographic coordinate (longitude, latitude).
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Route describes a drivable path between two resolved addresses, as shown
// by the tracking view.
type Route struct {
	Origin       Point  `json:"origin"`
	Destination  Point  `json:"destination"`
	Geometry     string `json:"geometry"` // encoded polyline
	DistanceText string `json:"distanceText"`
	DurationText string `json:"durationText"`
}

// DistanceResult is a raw provider answer: travel distance and duration.
type DistanceResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Provider is the boundary to the external geocoding/distance capability.
type Provider interface {
	// Distance returns travel distance and duration between two free-text addresses.
	Distance(ctx context.Context, origin, destination string) (DistanceResult, error)
	// Route resolves both addresses and returns a drivable route between them.
	Route(ctx context.Context, origin, destination string) (*Route, error)
	// Suggest returns address completions for a partial input.
	Suggest(ctx context.Context, partial string) ([]string, error)
}
