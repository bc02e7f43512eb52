package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of the Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Distance(ctx context.Context, origin, destination string) (DistanceResult, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(DistanceResult), args.Error(1)
}

func (m *MockProvider) Route(ctx context.Context, origin, destination string) (*Route, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Route), args.Error(1)
}

func (m *MockProvider) Suggest(ctx context.Context, partial string) ([]string, error) {
	args := m.Called(ctx, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestGateway_DistanceBetween(t *testing.T) {
	ctx := context.Background()

	t.Run("Success converts meters to km", func(t *testing.T) {
		provider := new(MockProvider)
		provider.On("Distance", ctx, "A", "B").
			Return(DistanceResult{DistanceMeters: 5000, DurationSeconds: 900}, nil)

		gw := NewGateway(provider)
		assert.Equal(t, 5.0, gw.DistanceBetween(ctx, "A", "B"))
		provider.AssertExpectations(t)
	})

	t.Run("Geocoding failure falls back to 5 km", func(t *testing.T) {
		provider := new(MockProvider)
		provider.On("Distance", ctx, "nowhere", "also nowhere").
			Return(DistanceResult{}, ErrNoGeocodeResult)

		gw := NewGateway(provider)

		// No error reaches the caller, only the fallback value.
		assert.Equal(t, FallbackDistanceKm, gw.DistanceBetween(ctx, "nowhere", "also nowhere"))
	})

	t.Run("Provider outage falls back to 5 km", func(t *testing.T) {
		provider := new(MockProvider)
		provider.On("Distance", ctx, "A", "B").
			Return(DistanceResult{}, errors.New("connection refused"))

		gw := NewGateway(provider)
		assert.Equal(t, FallbackDistanceKm, gw.DistanceBetween(ctx, "A", "B"))
	})
}

func TestGateway_RouteBetween(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		route := &Route{
			Origin:       Point{Lon: 28.28, Lat: -15.41},
			Destination:  Point{Lon: 28.32, Lat: -15.39},
			Geometry:     "abc123",
			DistanceText: "5.0 km",
			DurationText: "15 mins",
		}
		provider := new(MockProvider)
		provider.On("Route", ctx, "A", "B").Return(route, nil)

		gw := NewGateway(provider)
		got, err := gw.RouteBetween(ctx, "A", "B")
		assert.NoError(t, err)
		assert.Equal(t, route, got)
	})

	t.Run("Route failure is surfaced", func(t *testing.T) {
		provider := new(MockProvider)
		provider.On("Route", ctx, "A", "B").Return(nil, ErrRouteUnavailable)

		gw := NewGateway(provider)
		_, err := gw.RouteBetween(ctx, "A", "B")
		assert.ErrorIs(t, err, ErrRouteUnavailable)
	})
}

func TestGateway_Suggest(t *testing.T) {
	ctx := context.Background()
	provider := new(MockProvider)
	provider.On("Suggest", ctx, "Parire").
		Return([]string{"Parirenyetwa Rd, Lusaka"}, nil)

	gw := NewGateway(provider)
	got, err := gw.Suggest(ctx, "Parire")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Parirenyetwa Rd, Lusaka"}, got)
}
