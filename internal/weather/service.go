package weather

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Service resolves free-text locations through the provider and records
// successful snapshots in the store.
type Service struct {
	store           Store
	provider        Provider
	defaultLocation string
}

// NewService creates a new Service. An empty defaultLocation means DefaultLocation.
func NewService(store Store, provider Provider, defaultLocation string) *Service {
	return &Service{
		store:           store,
		provider:        provider,
		defaultLocation: defaultLocation,
	}
}

// Fetch performs exactly one provider round trip for location. Failures are
// logged and returned as *FetchError; nothing is stored for them.
func (s *Service) Fetch(ctx context.Context, location string) (Snapshot, error) {
	query := NormalizeQuery(location, s.defaultLocation)

	if s.provider == nil {
		err := TransportError(query, fmt.Errorf("no weather provider configured"))
		log.Printf("ERROR: %v", err)
		return Snapshot{}, err
	}

	log.Printf("DEBUG: fetching weather for %q from %s", query, s.provider.Name())

	snap, err := s.provider.Fetch(ctx, query)
	if err != nil {
		log.Printf("ERROR: provider %s: %v", s.provider.Name(), err)
		return Snapshot{}, err
	}

	snap.Query = query
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = time.Now().UTC()
	}
	if s.store != nil {
		s.store.SaveSnapshot(query, snap)
	}
	return snap, nil
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest(query string) (Snapshot, error) {
	return s.store.GetLatest(NormalizeQuery(query, s.defaultLocation))
}

// GetRange delegates to the underlying store.
func (s *Service) GetRange(query string, from, to time.Time) ([]Snapshot, error) {
	return s.store.GetRange(NormalizeQuery(query, s.defaultLocation), from, to)
}
