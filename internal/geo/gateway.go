package geo

import (
	"context"

	"tastebite-be/internal/logger"

	"go.uber.org/zap"
)

// FallbackDistanceKm is substituted whenever a distance lookup fails for any
// reason. Checkout must always get a number, so lookup faults degrade to this
// default instead of propagating.
const FallbackDistanceKm = 5.0

// Gateway fronts the external provider with the storefront's failure policy:
// distance lookups never fail (they fall back to a fixed default), route
// lookups surface ErrRouteUnavailable for the tracking view to display.
type Gateway struct {
	provider Provider
}

func NewGateway(provider Provider) *Gateway {
	return &Gateway{provider: provider}
}

// DistanceBetween resolves the travel distance in kilometers between two
// addresses. It never returns an error: unresolvable addresses, provider
// faults and outages all yield FallbackDistanceKm.
func (g *Gateway) DistanceBetween(ctx context.Context, origin, destination string) float64 {
	result, err := g.provider.Distance(ctx, origin, destination)
	if err != nil {
		logger.FromCtx(ctx).Warn("distance lookup failed, using fallback",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.Float64("fallback_km", FallbackDistanceKm),
			zap.Error(err),
		)
		return FallbackDistanceKm
	}

	return float64(result.DistanceMeters) / 1000
}

// RouteBetween returns the drivable route between two addresses, or
// ErrRouteUnavailable when either address fails to resolve or no route
// exists.
func (g *Gateway) RouteBetween(ctx context.Context, origin, destination string) (*Route, error) {
	return g.provider.Route(ctx, origin, destination)
}

// Suggest passes through address completions for a partial input.
func (g *Gateway) Suggest(ctx context.Context, partial string) ([]string, error) {
	return g.provider.Suggest(ctx, partial)
}
