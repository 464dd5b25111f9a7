package catalog

import (
	"context"

	"github.com/dharmasatrya/tripbooking/internal/models"
)

// Adapter is the upstream inventory source. Implementations may be
// slow or fail outright; callers degrade to fallback synthesis or
// empty-state results rather than propagating the failure.
type Adapter interface {
	Name() string
	FetchFlights(ctx context.Context) ([]models.FlightLeg, error)
	FetchAirports(ctx context.Context) ([]models.AirportRecord, error)
	FetchHotels(ctx context.Context, city string) ([]models.Hotel, error)
}

type AdapterError struct {
	Source string
	Err    error
}

func (e *AdapterError) Error() string {
	return e.Source + ": " + e.Err.Error()
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

func NewAdapterError(source string, err error) *AdapterError {
	return &AdapterError{
		Source: source,
		Err:    err,
	}
}
