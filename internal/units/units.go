// Package units provides volume conversions between the metric and US
// customary systems. All conversions use fixed constants; MlPerOunce is
// the single source of truth for the ounce conversion everywhere in the
// application.
package units

import (
	"errors"
	"fmt"
)

const (
	// MlPerOunce is the number of milliliters in one US fluid ounce.
	MlPerOunce = 29.5735

	// MlPerLiter is the number of milliliters in one liter.
	MlPerLiter = 1000.0

	// MlPerGallon is the number of milliliters in one US gallon.
	MlPerGallon = 3785.41
)

// MeasurementSystem selects how volumes are displayed.
type MeasurementSystem string

const (
	Metric MeasurementSystem = "metric"
	US     MeasurementSystem = "us"
)

// ErrNegativeVolume reports a negative quantity passed to a conversion.
// Conversions never require negative input, so a caller hitting this has
// a bug upstream of the conversion call.
var ErrNegativeVolume = errors.New("volume must not be negative")

// ParseMeasurementSystem converts a config/user value into a
// MeasurementSystem, rejecting anything outside the closed set.
func ParseMeasurementSystem(s string) (MeasurementSystem, error) {
	switch MeasurementSystem(s) {
	case Metric:
		return Metric, nil
	case US:
		return US, nil
	default:
		return "", fmt.Errorf("unknown measurement system: %q", s)
	}
}

// MillilitersToOunces converts milliliters to US fluid ounces.
func MillilitersToOunces(ml float64) (float64, error) {
	if ml < 0 {
		return 0, fmt.Errorf("%w: %v mL", ErrNegativeVolume, ml)
	}
	return ml / MlPerOunce, nil
}

// OuncesToMilliliters converts US fluid ounces to milliliters.
func OuncesToMilliliters(oz float64) (float64, error) {
	if oz < 0 {
		return 0, fmt.Errorf("%w: %v oz", ErrNegativeVolume, oz)
	}
	return oz * MlPerOunce, nil
}

// LitersToMilliliters converts liters to milliliters.
func LitersToMilliliters(l float64) (float64, error) {
	if l < 0 {
		return 0, fmt.Errorf("%w: %v L", ErrNegativeVolume, l)
	}
	return l * MlPerLiter, nil
}

// MillilitersToLiters converts milliliters to liters.
func MillilitersToLiters(ml float64) (float64, error) {
	if ml < 0 {
		return 0, fmt.Errorf("%w: %v mL", ErrNegativeVolume, ml)
	}
	return ml / MlPerLiter, nil
}

// GallonsToMilliliters converts US gallons to milliliters.
func GallonsToMilliliters(gal float64) (float64, error) {
	if gal < 0 {
		return 0, fmt.Errorf("%w: %v gal", ErrNegativeVolume, gal)
	}
	return gal * MlPerGallon, nil
}

// MillilitersToGallons converts milliliters to US gallons.
func MillilitersToGallons(ml float64) (float64, error) {
	if ml < 0 {
		return 0, fmt.Errorf("%w: %v mL", ErrNegativeVolume, ml)
	}
	return ml / MlPerGallon, nil
}

// FormatVolume renders a milliliter quantity for display under the given
// measurement system. Metric shows liters with one decimal at or above
// 1000 mL and whole milliliters below; US shows ounces with one decimal.
// The output is a plain numeric string, not locale-aware.
func FormatVolume(ml float64, system MeasurementSystem) string {
	if system == US {
		return fmt.Sprintf("%.1f oz", ml/MlPerOunce)
	}
	if ml >= MlPerLiter {
		return fmt.Sprintf("%.1f L", ml/MlPerLiter)
	}
	return fmt.Sprintf("%d mL", int(ml))
}
