package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/i474232898/weather-widget/internal/weather"
)

const timelineBody = `{
	"resolvedAddress": "123, Main St, Springfield, Illinois, 62704, USA",
	"days": [
		{"temp": 12.4, "feelslike": 10.1, "conditions": "Rain, Partially cloudy", "windspeed": 14.2, "humidity": 81.3},
		{"temp": 15.0, "feelslike": 14.0, "conditions": "Clear", "windspeed": 3.0, "humidity": 40}
	]
}`

func staticKey(k string) KeySource { return func() string { return k } }

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*VisualCrossingProvider, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	p := NewVisualCrossingProvider(srv.Client(), staticKey("secret"), VisualCrossingOptions{BaseURL: srv.URL + "/timeline"})
	return p, &calls
}

func TestVisualCrossingFetchSuccess(t *testing.T) {
	p, calls := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/timeline/Springfield, IL" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "secret" {
			t.Errorf("expected api key, got %q", got)
		}
		if got := r.URL.Query().Get("unitGroup"); got != "uk" {
			t.Errorf("expected unitGroup=uk, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(timelineBody))
	})

	snap, err := p.Fetch(context.Background(), "Springfield, IL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(calls) != 1 {
		t.Fatalf("expected exactly one request, got %d", *calls)
	}

	want := weather.Snapshot{
		Location:    "Illinois, USA",
		Temperature: 12.4,
		Conditions:  "Rain, Partially cloudy",
		FeelsLike:   10.1,
		WindSpeed:   14.2,
		Humidity:    81.3,
		Address:     "123, Main St, Springfield, Illinois, 62704, USA",
	}
	snap.FetchedAt = want.FetchedAt
	if snap != want {
		t.Fatalf("unexpected snapshot:\n got %+v\nwant %+v", snap, want)
	}
}

func TestVisualCrossingDataValidityFailures(t *testing.T) {
	bodies := map[string]string{
		"missing days":    `{"resolvedAddress": "Paris, France"}`,
		"empty days":      `{"resolvedAddress": "Paris, France", "days": []}`,
		"missing address": `{"days": [{"temp": 1, "feelslike": 1, "windspeed": 1, "humidity": 1}]}`,
		"missing temp":    `{"resolvedAddress": "Paris, France", "days": [{"feelslike": 1, "windspeed": 1, "humidity": 1}]}`,
		"not json":        `Bad API Request`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})
			_, err := p.Fetch(context.Background(), "Paris")
			if !errors.Is(err, weather.ErrDataValidity) {
				t.Fatalf("expected data validity failure, got %v", err)
			}
		})
	}
}

func TestVisualCrossingTransportFailures(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError} {
		p, calls := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", status)
		})
		_, err := p.Fetch(context.Background(), "Paris")
		if !errors.Is(err, weather.ErrTransport) {
			t.Fatalf("status %d: expected transport failure, got %v", status, err)
		}
		if atomic.LoadInt32(calls) != 1 {
			t.Fatalf("status %d: expected no retries by default, got %d calls", status, *calls)
		}
	}
}

func TestVisualCrossingMissingKey(t *testing.T) {
	p, calls := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(timelineBody))
	})
	p.apiKey = staticKey("")

	_, err := p.Fetch(context.Background(), "Paris")
	if !errors.Is(err, weather.ErrTransport) {
		t.Fatalf("expected transport failure, got %v", err)
	}
	if atomic.LoadInt32(calls) != 0 {
		t.Fatalf("no request should be made without a key")
	}
}

func TestRateLimitedProviderCanceledWait(t *testing.T) {
	p, calls := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(timelineBody))
	})
	limited := NewRateLimitedProvider(p, 0.001, 1)

	if _, err := limited.Fetch(context.Background(), "Springfield"); err != nil {
		t.Fatalf("first call should pass the limiter: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := limited.Fetch(ctx, "Springfield"); !errors.Is(err, weather.ErrTransport) {
		t.Fatalf("expected transport failure for canceled wait, got %v", err)
	}
	if atomic.LoadInt32(calls) != 1 {
		t.Fatalf("expected one upstream call, got %d", *calls)
	}
}
