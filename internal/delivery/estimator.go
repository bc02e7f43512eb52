package delivery

import "math"

// Delivery policy constants. Speed reflects average Lusaka traffic.
const (
	AverageSpeedKmh    = 15
	PreparationMinutes = 15
	MaxDeliveryMinutes = 90
)

// StageDurations is the proportional breakdown of a delivery estimate across
// the non-terminal order stages, in whole minutes.
type StageDurations struct {
	Pending        int
	Preparing      int
	OutForDelivery int
}

// EstimateMinutes returns the total delivery time for a trip of the given
// distance: travel time at the average speed, rounded up, plus a fixed
// preparation window.
func EstimateMinutes(distanceKm float64) int {
	travel := int(math.Ceil(distanceKm / AverageSpeedKmh * 60))
	return travel + PreparationMinutes
}

// IsDeliverable reports whether an order at the given distance can be
// fulfilled within the maximum delivery window.
func IsDeliverable(distanceKm float64) bool {
	return EstimateMinutes(distanceKm) <= MaxDeliveryMinutes
}

// Stages splits a total estimate into per-stage durations using fixed
// 20/40/40 shares, each floored independently. The three values may sum to
// slightly less than totalMinutes; the scheduler builds its cumulative
// offsets from these values, so the delivered transition fires at their sum,
// while displayed estimates keep using totalMinutes.
func Stages(totalMinutes int) StageDurations {
	return StageDurations{
		Pending:        int(math.Floor(float64(totalMinutes) * 0.2)),
		Preparing:      int(math.Floor(float64(totalMinutes) * 0.4)),
		OutForDelivery: int(math.Floor(float64(totalMinutes) * 0.4)),
	}
}
