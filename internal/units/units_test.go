package units

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMillilitersToOunces(t *testing.T) {
	oz, err := MillilitersToOunces(750)
	require.NoError(t, err)
	require.InDelta(t, 25.3605, oz, 0.001)

	oz, err = MillilitersToOunces(0)
	require.NoError(t, err)
	require.Zero(t, oz)

	_, err = MillilitersToOunces(-1)
	require.ErrorIs(t, err, ErrNegativeVolume)
}

func TestOunceRoundTrip(t *testing.T) {
	for _, ml := range []float64{0.5, 29.5735, 750, 1000, 3785.41} {
		oz, err := MillilitersToOunces(ml)
		require.NoError(t, err)
		back, err := OuncesToMilliliters(oz)
		require.NoError(t, err)
		require.InDelta(t, ml, back, 1e-6)
	}
}

func TestLinearConversions(t *testing.T) {
	tests := []struct {
		name    string
		convert func(float64) (float64, error)
		in      float64
		want    float64
	}{
		{"liters to ml", LitersToMilliliters, 1.75, 1750},
		{"ml to liters", MillilitersToLiters, 500, 0.5},
		{"gallons to ml", GallonsToMilliliters, 1, 3785.41},
		{"ml to gallons", MillilitersToGallons, 3785.41, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.convert(tt.in)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-9)

			_, err = tt.convert(-1)
			require.ErrorIs(t, err, ErrNegativeVolume)
		})
	}
}

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		ml     float64
		system MeasurementSystem
		want   string
	}{
		{750, Metric, "750 mL"},
		{999, Metric, "999 mL"},
		{1000, Metric, "1.0 L"},
		{1750, Metric, "1.8 L"},
		{750, US, "25.4 oz"},
		{29.5735, US, "1.0 oz"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatVolume(tt.ml, tt.system))
	}
}

func TestParseMeasurementSystem(t *testing.T) {
	sys, err := ParseMeasurementSystem("metric")
	require.NoError(t, err)
	require.Equal(t, Metric, sys)

	sys, err = ParseMeasurementSystem("us")
	require.NoError(t, err)
	require.Equal(t, US, sys)

	_, err = ParseMeasurementSystem("imperial")
	require.Error(t, err)
}
