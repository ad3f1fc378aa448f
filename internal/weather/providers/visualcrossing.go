package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/i474232898/weather-widget/internal/weather"
	"github.com/sony/gobreaker"
)

// DefaultVisualCrossingURL is the timeline endpoint; the location is appended as a path segment.
const DefaultVisualCrossingURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"

// KeySource returns the provider API key. It is called on every fetch.
type KeySource func() string

// VisualCrossingOptions configures a VisualCrossingProvider.
type VisualCrossingOptions struct {
	BaseURL    string
	UnitGroup  string
	MaxRetries int
}

// VisualCrossingProvider implements the weather.Provider interface for the Visual Crossing timeline API.
type VisualCrossingProvider struct {
	name      string
	apiKey    KeySource
	baseURL   string
	unitGroup string
	httpCfg   HTTPClientConfig
	circuit   *gobreaker.CircuitBreaker
}

func NewVisualCrossingProvider(client *http.Client, apiKey KeySource, opts VisualCrossingOptions) *VisualCrossingProvider {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultVisualCrossingURL
	}
	unitGroup := opts.UnitGroup
	if unitGroup == "" {
		unitGroup = "uk"
	}

	return &VisualCrossingProvider{
		name:      "visualcrossing",
		apiKey:    apiKey,
		baseURL:   baseURL,
		unitGroup: unitGroup,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      opts.MaxRetries,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: newCircuitBreaker("visualcrossing"),
	}
}

func (p *VisualCrossingProvider) Name() string {
	return p.name
}

// timelineResponse is the subset of the timeline payload the widget uses.
type timelineResponse struct {
	ResolvedAddress string `json:"resolvedAddress"`
	Days            []struct {
		Temp       *float64 `json:"temp"`
		FeelsLike  *float64 `json:"feelslike"`
		Conditions string   `json:"conditions"`
		WindSpeed  *float64 `json:"windspeed"`
		Humidity   *float64 `json:"humidity"`
	} `json:"days"`
}

func (p *VisualCrossingProvider) Fetch(ctx context.Context, query string) (weather.Snapshot, error) {
	var key string
	if p.apiKey != nil {
		key = p.apiKey()
	}
	if key == "" {
		return weather.Snapshot{}, weather.TransportError(query, fmt.Errorf("visual crossing api key is not configured"))
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", key)
		values.Set("unitGroup", p.unitGroup)

		u := fmt.Sprintf("%s/%s?%s", p.baseURL, url.PathEscape(query), values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Snapshot{}, weather.TransportError(query, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Snapshot{}, weather.TransportError(query, fmt.Errorf("read response: %w", err))
	}

	snap, err := parseTimeline(body)
	if err != nil {
		return weather.Snapshot{}, weather.DataValidityError(query, err)
	}
	snap.FetchedAt = time.Now().UTC()
	return snap, nil
}

func parseTimeline(body []byte) (weather.Snapshot, error) {
	var payload timelineResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode response: %w", err)
	}

	if len(payload.Days) == 0 || payload.ResolvedAddress == "" {
		return weather.Snapshot{}, errors.New("no data found")
	}

	day := payload.Days[0]
	var missing []string
	if day.Temp == nil {
		missing = append(missing, "temp")
	}
	if day.FeelsLike == nil {
		missing = append(missing, "feelslike")
	}
	if day.WindSpeed == nil {
		missing = append(missing, "windspeed")
	}
	if day.Humidity == nil {
		missing = append(missing, "humidity")
	}
	if len(missing) > 0 {
		return weather.Snapshot{}, fmt.Errorf("first day is missing %s", strings.Join(missing, ", "))
	}

	return weather.Snapshot{
		Location:    weather.CleanAddress(payload.ResolvedAddress),
		Temperature: *day.Temp,
		Conditions:  day.Conditions,
		FeelsLike:   *day.FeelsLike,
		WindSpeed:   *day.WindSpeed,
		Humidity:    *day.Humidity,
		Address:     payload.ResolvedAddress,
	}, nil
}
