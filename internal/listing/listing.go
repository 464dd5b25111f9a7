// Package listing serves the one read-only transfer listing the app
// exposes: a fixed set of airport cab and shuttle records.
package listing

type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

var records = []Record{
	{ID: "CAB-01", Name: "City Sedan", Description: "Four-seater airport pickup, metered fare", Image: "/img/listings/sedan.jpg"},
	{ID: "CAB-02", Name: "Premium SUV", Description: "Six-seater with luggage space for long hauls", Image: "/img/listings/suv.jpg"},
	{ID: "CAB-03", Name: "Shared Shuttle", Description: "Scheduled terminal shuttle, per-seat pricing", Image: "/img/listings/shuttle.jpg"},
	{ID: "CAB-04", Name: "Luxury Chauffeur", Description: "Executive sedan with a dedicated driver", Image: "/img/listings/luxury.jpg"},
	{ID: "CAB-05", Name: "Bike Taxi", Description: "Single rider, quickest through city traffic", Image: "/img/listings/bike.jpg"},
}

// All returns the fixed record set in a caller-owned slice.
func All() []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
