package kernel_test

import (
	"fmt"
	"testing"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		tests := []struct {
			latitude  float64
			longitude float64
		}{
			{20.5888, -100.3899},
			{-90, -180},
			{90, 180},
			{0, 0},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("lat=%v lon=%v", tt.latitude, tt.longitude), func(t *testing.T) {
				point, err := kernel.NewGeoPoint(tt.latitude, tt.longitude)
				require.NoError(t, err)
				assert.InDelta(t, tt.latitude, point.Latitude(), 0)
				assert.InDelta(t, tt.longitude, point.Longitude(), 0)
				require.NoError(t, point.Validate())
			})
		}
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		for _, lat := range []float64{-90.0001, 95, 180} {
			_, err := kernel.NewGeoPoint(lat, 0)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		for _, lon := range []float64{-180.0001, 181, 360} {
			_, err := kernel.NewGeoPoint(0, lon)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should join errors when both coordinates invalid", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(95, 181)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var point kernel.GeoPoint
		err := point.Validate()
		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal coordinates", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(20.6, -100.4)
		b, _ := kernel.NewGeoPoint(20.6, -100.4)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(20.6, -100.4)
		b, _ := kernel.NewGeoPoint(19.4, -99.1)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed operand fails", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(20.6, -100.4)
		var b kernel.GeoPoint

		_, err := a.IsEqual(b)
		require.Error(t, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	point, err := kernel.NewGeoPoint(20.6, -100.4)
	require.NoError(t, err)
	assert.Equal(t, "GeoPoint(20.600000,-100.400000)", point.String())
}
