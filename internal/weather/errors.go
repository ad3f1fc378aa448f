package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport covers network errors, non-success statuses and an unavailable provider.
	ErrTransport = errors.New("transport failure")
	// ErrDataValidity covers successful responses that lack the data a snapshot needs.
	ErrDataValidity = errors.New("data validity failure")
)

// FetchError is the failure value returned by a Provider or the Service.
// Kind is ErrTransport or ErrDataValidity; both match with errors.Is.
type FetchError struct {
	Kind     error
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch weather for %q: %v: %v", e.Location, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// TransportError wraps err as a transport failure for location.
func TransportError(location string, err error) *FetchError {
	return &FetchError{Kind: ErrTransport, Location: location, Err: err}
}

// DataValidityError wraps err as a data validity failure for location.
func DataValidityError(location string, err error) *FetchError {
	return &FetchError{Kind: ErrDataValidity, Location: location, Err: err}
}
