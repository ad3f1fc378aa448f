package weather

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

type fakeProvider struct {
	snap    Snapshot
	err     error
	queries []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Fetch(_ context.Context, query string) (Snapshot, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return Snapshot{}, f.err
	}
	return f.snap, nil
}

type recordingStore struct {
	saved map[string][]Snapshot
}

func (r *recordingStore) SaveSnapshot(query string, s Snapshot) {
	if r.saved == nil {
		r.saved = make(map[string][]Snapshot)
	}
	r.saved[query] = append(r.saved[query], s)
}

func (r *recordingStore) GetLatest(query string) (Snapshot, error) {
	list := r.saved[query]
	if len(list) == 0 {
		return Snapshot{}, errors.New("not found")
	}
	return list[len(list)-1], nil
}

func (r *recordingStore) GetRange(query string, _, _ time.Time) ([]Snapshot, error) {
	return r.saved[query], nil
}

func TestServiceFetchDefaultsToLondon(t *testing.T) {
	prov := &fakeProvider{snap: Snapshot{Location: "England, United Kingdom", Temperature: 11}}
	st := &recordingStore{}
	svc := NewService(st, prov, "")

	snap, err := svc.Fetch(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prov.queries) != 1 || prov.queries[0] != "London" {
		t.Fatalf("expected a single query for London, got %v", prov.queries)
	}
	if snap.Query != "London" {
		t.Fatalf("expected query to be recorded, got %q", snap.Query)
	}
	if snap.FetchedAt.IsZero() {
		t.Fatalf("expected FetchedAt to be set")
	}
	if len(st.saved["London"]) != 1 {
		t.Fatalf("expected snapshot to be stored")
	}
}

func TestServiceFetchFailureIsTypedAndNotStored(t *testing.T) {
	prov := &fakeProvider{err: DataValidityError("Nowhere", errors.New("days missing"))}
	st := &recordingStore{}
	svc := NewService(st, prov, "London")

	_, err := svc.Fetch(context.Background(), "Nowhere")
	if !errors.Is(err, ErrDataValidity) {
		t.Fatalf("expected data validity failure, got %v", err)
	}
	if errors.Is(err, ErrTransport) {
		t.Fatalf("data validity failure must not match transport")
	}
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Location != "Nowhere" {
		t.Fatalf("expected *FetchError for Nowhere, got %#v", err)
	}
	if len(st.saved) != 0 {
		t.Fatalf("failed fetch must not be stored")
	}
}

func TestServiceWithoutProvider(t *testing.T) {
	svc := NewService(&recordingStore{}, nil, "")
	if _, err := svc.Fetch(context.Background(), "Paris"); !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport failure, got %v", err)
	}
}

func TestSnapshotValidate(t *testing.T) {
	good := &Snapshot{Location: "Paris, France", Temperature: 20, FeelsLike: 19, WindSpeed: 5, Humidity: 60}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var nilSnap *Snapshot
	bad := []*Snapshot{
		nilSnap,
		{Temperature: math.NaN(), Humidity: 50},
		{FeelsLike: math.Inf(1), Humidity: 50},
		{Humidity: 120},
		{WindSpeed: -1, Humidity: 50},
	}
	for i, s := range bad {
		if err := s.Validate(); !errors.Is(err, ErrMalformedSnapshot) {
			t.Errorf("case %d: expected ErrMalformedSnapshot, got %v", i, err)
		}
	}
}
