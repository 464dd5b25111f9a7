package itinerary

import (
	"fmt"
	"strings"

	"github.com/dharmasatrya/tripbooking/internal/models"
	"github.com/dharmasatrya/tripbooking/pkg/currency"
)

// MultiCityCandidates is the fixed number of candidate itineraries a
// multi-city search yields. Candidates rotate through the per-segment
// match lists instead of cross-joining them, which keeps the result
// bounded no matter how many segments the query carries.
const MultiCityCandidates = 5

// FallbackPrice is the fixed fare attached to a synthesized leg.
const FallbackPrice = 4500.0

const (
	fallbackAirline    = "AeroVista"
	fallbackCodePrefix = "AV"
)

// Build assembles one-way itineraries: one single-leg itinerary per
// catalog match, in catalog order. When nothing matches, exactly one
// fallback leg is synthesized so the result is never empty.
func Build(query models.SearchQuery, catalog []models.FlightLeg) []models.Itinerary {
	return buildDirection(query.From, query.To, query.Date, catalog)
}

// BuildRoundTrip assembles the outbound and inbound lists
// independently. The two sides are never cross-joined; combining them
// happens at fare time, driven by one selection per side.
func BuildRoundTrip(query models.SearchQuery, catalog []models.FlightLeg) (outbound, inbound []models.Itinerary) {
	returnDate := query.Date
	if query.ReturnDate != nil {
		returnDate = *query.ReturnDate
	}

	outbound = buildDirection(query.From, query.To, query.Date, catalog)
	inbound = buildDirection(query.To, query.From, returnDate, catalog)
	return outbound, inbound
}

// BuildMultiCity yields exactly MultiCityCandidates itineraries.
// Candidate i takes matches[i mod len(matches)] for each segment, with
// the same per-segment fallback rule as one-way searches.
func BuildMultiCity(query models.SearchQuery, catalog []models.FlightLeg) []models.Itinerary {
	perSegment := make([][]models.FlightLeg, len(query.Segments))
	for s, seg := range query.Segments {
		matches := matchLegs(seg.From, seg.To, catalog)
		if len(matches) == 0 {
			matches = []models.FlightLeg{synthesizeLeg(seg.From, seg.To, seg.Date)}
		}
		perSegment[s] = matches
	}

	candidates := make([]models.Itinerary, 0, MultiCityCandidates)
	for i := 0; i < MultiCityCandidates; i++ {
		legs := make([]models.FlightLeg, len(perSegment))
		for s, matches := range perSegment {
			legs[s] = matches[i%len(matches)]
		}
		candidates = append(candidates, models.NewItinerary(legs...))
	}

	return candidates
}

func buildDirection(from, to, date string, catalog []models.FlightLeg) []models.Itinerary {
	matches := matchLegs(from, to, catalog)
	if len(matches) == 0 {
		matches = []models.FlightLeg{synthesizeLeg(from, to, date)}
	}

	itineraries := make([]models.Itinerary, 0, len(matches))
	for _, leg := range matches {
		itineraries = append(itineraries, models.NewItinerary(leg))
	}
	return itineraries
}

// matchLegs keeps catalog order; ranking belongs to presentation.
func matchLegs(from, to string, catalog []models.FlightLeg) []models.FlightLeg {
	var matches []models.FlightLeg
	for _, leg := range catalog {
		if strings.EqualFold(leg.Origin, from) && strings.EqualFold(leg.Destination, to) {
			matches = append(matches, leg)
		}
	}
	return matches
}

func synthesizeLeg(from, to, date string) models.FlightLeg {
	return models.FlightLeg{
		ID:            fmt.Sprintf("%s-%s-%s-synth", fallbackCodePrefix, from, to),
		Origin:        from,
		Destination:   to,
		Airline:       fallbackAirline,
		FlightCode:    fallbackCodePrefix + "-301",
		DepartureTime: "09:00",
		ArrivalTime:   "11:30",
		Duration:      "2h 30m",
		Stops:         "Non-stop",
		Price:         FallbackPrice,
		PriceLabel:    currency.FormatINR(FallbackPrice),
		Date:          date,
		Synthesized:   true,
	}
}
