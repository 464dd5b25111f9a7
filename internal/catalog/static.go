package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dharmasatrya/tripbooking/internal/catalog/data"
	"github.com/dharmasatrya/tripbooking/internal/models"
	"github.com/dharmasatrya/tripbooking/pkg/currency"
)

type flightsFile struct {
	Flights []models.FlightLeg `json:"flights"`
}

type airportsFile struct {
	Airports []models.AirportRecord `json:"airports"`
}

type hotelsFile struct {
	Hotels []models.Hotel `json:"hotels"`
}

// StaticAdapter serves the embedded inventory snapshot. A configurable
// latency stands in for upstream round-trip time; fetches still honor
// context cancellation so a superseded search can be abandoned.
type StaticAdapter struct {
	flights  []models.FlightLeg
	airports []models.AirportRecord
	hotels   []models.Hotel
	latency  time.Duration
}

func NewStaticAdapter(latency time.Duration) (*StaticAdapter, error) {
	var ff flightsFile
	if err := json.Unmarshal(data.Flights, &ff); err != nil {
		return nil, NewAdapterError("static", err)
	}
	for i := range ff.Flights {
		ff.Flights[i].PriceLabel = currency.FormatINR(ff.Flights[i].Price)
	}

	var af airportsFile
	if err := json.Unmarshal(data.Airports, &af); err != nil {
		return nil, NewAdapterError("static", err)
	}

	var hf hotelsFile
	if err := json.Unmarshal(data.Hotels, &hf); err != nil {
		return nil, NewAdapterError("static", err)
	}

	return &StaticAdapter{
		flights:  ff.Flights,
		airports: af.Airports,
		hotels:   hf.Hotels,
		latency:  latency,
	}, nil
}

func (a *StaticAdapter) Name() string {
	return "static"
}

func (a *StaticAdapter) FetchFlights(ctx context.Context) ([]models.FlightLeg, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	out := make([]models.FlightLeg, len(a.flights))
	copy(out, a.flights)
	return out, nil
}

func (a *StaticAdapter) FetchAirports(ctx context.Context) ([]models.AirportRecord, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	out := make([]models.AirportRecord, len(a.airports))
	copy(out, a.airports)
	return out, nil
}

func (a *StaticAdapter) FetchHotels(ctx context.Context, city string) ([]models.Hotel, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	var out []models.Hotel
	for _, h := range a.hotels {
		if city == "" || strings.EqualFold(h.City, city) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (a *StaticAdapter) wait(ctx context.Context) error {
	if a.latency <= 0 {
		return ctx.Err()
	}

	select {
	case <-time.After(a.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
