//go:build unit

package geo_test

import (
	"testing"

	"medilocate/internal/domain/geo"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Run("identical points have zero distance", func(t *testing.T) {
		points := [][2]float64{
			{0, 0},
			{19.0760, 72.8777},
			{-33.8688, 151.2093},
			{90, 0},
		}
		for _, p := range points {
			assert.Zero(t, geo.DistanceKm(p[0], p[1], p[0], p[1]))
		}
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		pairs := [][4]float64{
			{19.0760, 72.8777, 19.1136, 72.8697},
			{35.6762, 139.6503, 34.6937, 135.5023},
			{-1.2921, 36.8219, 51.5074, -0.1278},
		}
		for _, p := range pairs {
			ab := geo.DistanceKm(p[0], p[1], p[2], p[3])
			ba := geo.DistanceKm(p[2], p[3], p[0], p[1])
			assert.InDelta(t, ab, ba, 1e-9)
		}
	})

	t.Run("known distances", func(t *testing.T) {
		// Mumbai city center to Andheri, roughly 4.3km as the crow flies.
		d := geo.DistanceKm(19.0760, 72.8777, 19.1136, 72.8697)
		assert.InDelta(t, 4.3, d, 0.2)

		// Tokyo to Osaka, roughly 400km.
		d = geo.DistanceKm(35.6762, 139.6503, 34.6937, 135.5023)
		assert.InDelta(t, 400, d, 5)
	})

	t.Run("never negative", func(t *testing.T) {
		d := geo.DistanceKm(-90, -180, 90, 180)
		assert.GreaterOrEqual(t, d, 0.0)
	})
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 4.33, geo.RoundKm(4.3349))
	assert.Equal(t, 4.34, geo.RoundKm(4.336))
	assert.Equal(t, 0.0, geo.RoundKm(0))
}
