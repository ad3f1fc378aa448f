package weather

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the temperature unit used for display.
type Unit string

const (
	UnitCelsius    Unit = "C"
	UnitFahrenheit Unit = "F"
)

// ParseUnit accepts "C"/"F" in any case, with or without a leading degree sign.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "°")) {
	case "C", "CELSIUS":
		return UnitCelsius, nil
	case "F", "FAHRENHEIT":
		return UnitFahrenheit, nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == UnitFahrenheit {
		return UnitCelsius
	}
	return UnitFahrenheit
}

// ConvertTemperature converts a Celsius value to u. Unknown units are treated as Celsius.
func ConvertTemperature(c float64, u Unit) float64 {
	if u == UnitFahrenheit {
		return c*9/5 + 32
	}
	return c
}

// FormatTemperature renders a Celsius value in u with one decimal, e.g. "12.5°C".
func FormatTemperature(c float64, u Unit) string {
	if u != UnitFahrenheit {
		u = UnitCelsius
	}
	return fmt.Sprintf("%.1f°%s", ConvertTemperature(c, u), u)
}

// FormatWindSpeed renders a wind speed in mph.
func FormatWindSpeed(mph float64) string {
	return strconv.FormatFloat(mph, 'f', -1, 64) + " mph"
}

// FormatHumidity renders relative humidity as a percentage.
func FormatHumidity(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}
