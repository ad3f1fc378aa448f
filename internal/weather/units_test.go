package weather

import (
	"math"
	"testing"
)

func TestConvertTemperature(t *testing.T) {
	for _, c := range []float64{-40, -17.5, 0, 12.3, 37, 100} {
		if got := ConvertTemperature(c, UnitCelsius); got != c {
			t.Errorf("ConvertTemperature(%v, C) = %v, want %v", c, got, c)
		}
		want := c*9/5 + 32
		if got := ConvertTemperature(c, UnitFahrenheit); math.Abs(got-want) > 1e-9 {
			t.Errorf("ConvertTemperature(%v, F) = %v, want %v", c, got, want)
		}
	}

	if got := ConvertTemperature(-40, UnitFahrenheit); got != -40 {
		t.Errorf("expected -40C to equal -40F, got %v", got)
	}
}

func TestFormatTemperature(t *testing.T) {
	if got := FormatTemperature(12.34, UnitCelsius); got != "12.3°C" {
		t.Errorf("unexpected celsius format: %q", got)
	}
	if got := FormatTemperature(10, UnitFahrenheit); got != "50.0°F" {
		t.Errorf("unexpected fahrenheit format: %q", got)
	}
	if got := FormatTemperature(5, Unit("K")); got != "5.0°C" {
		t.Errorf("unknown unit should render as celsius, got %q", got)
	}
}

func TestParseUnitAndToggle(t *testing.T) {
	for in, want := range map[string]Unit{"c": UnitCelsius, "°F": UnitFahrenheit, " fahrenheit ": UnitFahrenheit} {
		got, err := ParseUnit(in)
		if err != nil {
			t.Fatalf("ParseUnit(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseUnit(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseUnit("kelvin"); err == nil {
		t.Fatalf("expected error for unknown unit")
	}
	if UnitCelsius.Toggle() != UnitFahrenheit || UnitFahrenheit.Toggle() != UnitCelsius {
		t.Fatalf("toggle should flip between C and F")
	}
}

func TestFormatWindAndHumidity(t *testing.T) {
	if got := FormatWindSpeed(12.5); got != "12.5 mph" {
		t.Errorf("unexpected wind format: %q", got)
	}
	if got := FormatHumidity(81); got != "81%" {
		t.Errorf("unexpected humidity format: %q", got)
	}
}
