package models

type AirportRecord struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type FlightLeg struct {
	ID            string  `json:"id"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Airline       string  `json:"airline"`
	FlightCode    string  `json:"flight_code"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Stops         string  `json:"stops"`
	Price         float64 `json:"price"`
	PriceLabel    string  `json:"price_label,omitempty"`
	Date          string  `json:"date"`
	Synthesized   bool    `json:"synthesized,omitempty"`
}

type Itinerary struct {
	Legs       []FlightLeg `json:"legs"`
	TotalPrice float64     `json:"total_price"`
}

// NewItinerary copies the given legs and sums their prices.
func NewItinerary(legs ...FlightLeg) Itinerary {
	it := Itinerary{Legs: make([]FlightLeg, len(legs))}
	copy(it.Legs, legs)
	for _, leg := range legs {
		it.TotalPrice += leg.Price
	}
	return it
}

type Hotel struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Area   string  `json:"area"`
	Type   string  `json:"type"`
	Rating float64 `json:"rating"`
	Price  float64 `json:"price"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// Filter accessors. Both FlightLeg and Itinerary satisfy
// filter.Filterable; an itinerary answers with its total price and
// delegates leg-level attributes to its first leg.

func (l FlightLeg) FareAmount() float64 { return l.Price }

func (l FlightLeg) StopsLabel() string { return l.Stops }

func (l FlightLeg) AirlineName() string { return l.Airline }

func (l FlightLeg) DepartureClock() string { return l.DepartureTime }

func (l FlightLeg) ArrivalClock() string { return l.ArrivalTime }

func (it Itinerary) FareAmount() float64 { return it.TotalPrice }

func (it Itinerary) StopsLabel() string {
	if len(it.Legs) == 0 {
		return ""
	}
	return it.Legs[0].Stops
}

func (it Itinerary) AirlineName() string {
	if len(it.Legs) == 0 {
		return ""
	}
	return it.Legs[0].Airline
}

func (it Itinerary) DepartureClock() string {
	if len(it.Legs) == 0 {
		return ""
	}
	return it.Legs[0].DepartureTime
}

func (it Itinerary) ArrivalClock() string {
	if len(it.Legs) == 0 {
		return ""
	}
	return it.Legs[0].ArrivalTime
}
