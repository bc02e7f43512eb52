package delivery

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateMinutes(t *testing.T) {
	t.Run("Five km scenario", func(t *testing.T) {
		// ceil(5/15*60) + 15 = 20 + 15
		assert.Equal(t, 35, EstimateMinutes(5))
	})

	t.Run("Twenty five km scenario", func(t *testing.T) {
		// ceil(25/15*60) + 15 = 100 + 15
		assert.Equal(t, 115, EstimateMinutes(25))
	})

	t.Run("Zero distance is preparation only", func(t *testing.T) {
		assert.Equal(t, PreparationMinutes, EstimateMinutes(0))
	})

	t.Run("Matches formula and is monotonic", func(t *testing.T) {
		prev := 0
		for d := 0.0; d <= 50; d += 0.5 {
			want := int(math.Ceil(d/15*60)) + 15
			got := EstimateMinutes(d)
			assert.Equal(t, want, got, "distance %.1f", d)
			assert.GreaterOrEqual(t, got, prev, "estimate must not decrease at %.1f", d)
			prev = got
		}
	})
}

func TestIsDeliverable(t *testing.T) {
	assert.True(t, IsDeliverable(5))
	assert.False(t, IsDeliverable(25))

	// Boundary: exactly 90 minutes is deliverable, 91 is not.
	// estimate(18.75) = ceil(75) + 15 = 90
	assert.Equal(t, 90, EstimateMinutes(18.75))
	assert.True(t, IsDeliverable(18.75))
	// estimate(18.85) = ceil(75.4) + 15 = 91
	assert.Equal(t, 91, EstimateMinutes(18.85))
	assert.False(t, IsDeliverable(18.85))
}

func TestStages(t *testing.T) {
	t.Run("Thirty five minute split", func(t *testing.T) {
		s := Stages(35)
		assert.Equal(t, 7, s.Pending)
		assert.Equal(t, 14, s.Preparing)
		assert.Equal(t, 14, s.OutForDelivery)
	})

	t.Run("Floors independently and never exceeds the total", func(t *testing.T) {
		for total := 0; total <= 120; total++ {
			s := Stages(total)
			assert.Equal(t, int(math.Floor(float64(total)*0.2)), s.Pending)
			assert.Equal(t, int(math.Floor(float64(total)*0.4)), s.Preparing)
			assert.Equal(t, int(math.Floor(float64(total)*0.4)), s.OutForDelivery)
			assert.GreaterOrEqual(t, s.Pending, 0)
			assert.LessOrEqual(t, s.Pending+s.Preparing+s.OutForDelivery, total)
		}
	})
}
