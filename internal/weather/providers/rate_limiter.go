package providers

import (
	"context"
	"fmt"

	"github.com/i474232898/weather-widget/internal/weather"
	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a weather.Provider with a token bucket limiter.
type RateLimitedProvider struct {
	provider weather.Provider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedProvider limits provider to rps requests per second with the given burst.
// rps can be fractional for less than one request per second.
func NewRateLimitedProvider(provider weather.Provider, rps float64, burst int) *RateLimitedProvider {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// Fetch waits for limiter permission, then forwards to the underlying provider.
func (r *RateLimitedProvider) Fetch(ctx context.Context, query string) (weather.Snapshot, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return weather.Snapshot{}, weather.TransportError(query, fmt.Errorf("rate limit wait canceled: %w", err))
	}
	return r.provider.Fetch(ctx, query)
}

func (r *RateLimitedProvider) Name() string {
	return r.name
}

var (
	_ weather.Provider = (*VisualCrossingProvider)(nil)
	_ weather.Provider = (*RateLimitedProvider)(nil)
)
