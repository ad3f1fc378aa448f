package weather

import (
	"context"
	"time"
)

// Provider abstracts the upstream weather data source (Visual Crossing).
// Implementations return a *FetchError on failure.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, query string) (Snapshot, error)
}

// Store is the contract the in-memory snapshot store must satisfy.
type Store interface {
	SaveSnapshot(query string, snapshot Snapshot)
	GetLatest(query string) (Snapshot, error)
	GetRange(query string, from, to time.Time) ([]Snapshot, error)
}
