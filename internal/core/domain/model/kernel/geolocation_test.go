package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoLocation(t *testing.T) {
	t.Run("should create location with valid coordinates", func(t *testing.T) {
		loc, err := kernel.NewGeoLocation(31.2001, 29.9187)

		require.NoError(t, err)
		assert.InDelta(t, 31.2001, loc.Latitude(), 0.0001)
		assert.InDelta(t, 29.9187, loc.Longitude(), 0.0001)
		assert.NoError(t, loc.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"south pole", kernel.GeoLatitudeMin, 0},
			{"north pole", kernel.GeoLatitudeMax, 0},
			{"antimeridian west", 0, kernel.GeoLongitudeMin},
			{"antimeridian east", 0, kernel.GeoLongitudeMax},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				loc, err := kernel.NewGeoLocation(tc.lat, tc.lon)

				require.NoError(t, err)
				assert.NoError(t, loc.Validate())
			})
		}
	})

	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude too low", -90.1, 0},
			{"latitude too high", 90.1, 0},
			{"longitude too low", 0, -180.1},
			{"longitude too high", 0, 180.1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoLocation(tc.lat, tc.lon)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeoLocation_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var loc kernel.GeoLocation

		require.Error(t, loc.Validate())
	})
}

func TestGeoLocation_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoLocation(10, 20)
	require.NoError(t, err)
	b, err := kernel.NewGeoLocation(10, 20)
	require.NoError(t, err)
	c, err := kernel.NewGeoLocation(10, 21)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestGeoLocation_String(t *testing.T) {
	loc, err := kernel.NewGeoLocation(31.2001, -29.9187)
	require.NoError(t, err)

	assert.Equal(t, "GeoLocation(31.2001,-29.9187)", loc.String())
}
