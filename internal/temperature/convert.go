package temperature

import (
	"strconv"

	"github.com/shinji-kodama/beginner-cli/internal/model"
)

// FahrenheitToCelsius applies (F - 32) * 5/9.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// CelsiusToFahrenheit applies C * 9/5 + 32.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// Reading is a converted temperature.
type Reading struct {
	Value float64
	Unit  model.Unit
}

// String formats the value with exactly two decimal places.
func (r Reading) String() string {
	return Format(r.Value)
}

// Convert treats value as a temperature in unit and converts it to the
// other unit.
func Convert(value float64, unit model.Unit) (Reading, error) {
	switch unit {
	case model.UnitFahrenheit:
		return Reading{Value: FahrenheitToCelsius(value), Unit: model.UnitCelsius}, nil
	case model.UnitCelsius:
		return Reading{Value: CelsiusToFahrenheit(value), Unit: model.UnitFahrenheit}, nil
	default:
		return Reading{}, model.ErrInvalidUnit
	}
}

// Format renders v rounded to two decimal places.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
