package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultsToOneWay(t *testing.T) {
	q := SearchQuery{From: "DEL", To: "BOM", Date: "2026-09-14"}

	require.NoError(t, q.Validate())
	assert.Equal(t, ModeOneWay, q.Mode)
}

func TestValidate_Errors(t *testing.T) {
	returnDate := "2026-09-18"

	tests := []struct {
		name  string
		query SearchQuery
		want  error
	}{
		{"one-way missing from", SearchQuery{Mode: ModeOneWay, To: "BOM", Date: "2026-09-14"}, ErrMissingFrom},
		{"one-way missing to", SearchQuery{Mode: ModeOneWay, From: "DEL", Date: "2026-09-14"}, ErrMissingTo},
		{"one-way missing date", SearchQuery{Mode: ModeOneWay, From: "DEL", To: "BOM"}, ErrMissingDate},
		{"round-trip missing return", SearchQuery{Mode: ModeRoundTrip, From: "DEL", To: "BOM", Date: "2026-09-14"}, ErrMissingReturnDate},
		{"multi-city no segments", SearchQuery{Mode: ModeMultiCity}, ErrMissingSegments},
		{"multi-city blank segment", SearchQuery{Mode: ModeMultiCity, Segments: []SegmentQuery{{From: "DEL"}}}, ErrMissingSegmentRoute},
		{"unknown mode", SearchQuery{Mode: "teleport", From: "DEL", To: "BOM", Date: "2026-09-14"}, ErrUnknownMode},
		{"valid round trip", SearchQuery{Mode: ModeRoundTrip, From: "DEL", To: "BOM", Date: "2026-09-14", ReturnDate: &returnDate}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.query.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tc.want, err)
			}
		})
	}
}

func TestNewItinerary_SumsLegPrices(t *testing.T) {
	it := NewItinerary(
		FlightLeg{ID: "A", Price: 5230},
		FlightLeg{ID: "B", Price: 2890},
	)

	assert.Equal(t, 8120.0, it.TotalPrice)
	require.Len(t, it.Legs, 2)
}

func TestItinerary_FilterAccessorsDelegateToFirstLeg(t *testing.T) {
	it := NewItinerary(
		FlightLeg{Airline: "IndiGo", Stops: "Non-stop", DepartureTime: "05:40", ArrivalTime: "07:55", Price: 5230},
		FlightLeg{Airline: "Vistara", Stops: "1 Stop", DepartureTime: "14:25", ArrivalTime: "17:30", Price: 4890},
	)

	assert.Equal(t, 10120.0, it.FareAmount())
	assert.Equal(t, "IndiGo", it.AirlineName())
	assert.Equal(t, "Non-stop", it.StopsLabel())
	assert.Equal(t, "05:40", it.DepartureClock())

	empty := Itinerary{}
	assert.Equal(t, "", empty.AirlineName())
}
