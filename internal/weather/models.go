package weather

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultLocation is queried when the caller submits an empty location.
const DefaultLocation = "London"

var validate = validator.New()

// Snapshot is one normalized, point-in-time weather reading for a location.
type Snapshot struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperatureC"`
	Conditions  string  `json:"conditions"`
	FeelsLike   float64 `json:"feelsLikeC"`
	WindSpeed   float64 `json:"windSpeedMph" validate:"gte=0"`
	Humidity    float64 `json:"humidityPercent" validate:"gte=0,lte=100"`

	Query     string    `json:"query"`
	Address   string    `json:"resolvedAddress"`
	FetchedAt time.Time `json:"fetchedAt"` // always UTC
}

// ErrMalformedSnapshot is returned by Validate for snapshots that must not be rendered.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Validate reports whether s can be rendered as-is.
func (s *Snapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrMalformedSnapshot)
	}
	for name, v := range map[string]float64{
		"temperature": s.Temperature,
		"feelsLike":   s.FeelsLike,
		"windSpeed":   s.WindSpeed,
		"humidity":    s.Humidity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrMalformedSnapshot, name)
		}
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return nil
}

// NormalizeQuery trims the user query and falls back to DefaultLocation when empty.
func NormalizeQuery(q, fallback string) string {
	q = strings.TrimSpace(q)
	if q != "" {
		return q
	}
	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback
	}
	return DefaultLocation
}

// QueryKey returns a canonical key for indexing a location query in stores.
func QueryKey(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}
