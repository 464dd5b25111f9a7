package filter

import (
	"strings"
	"time"
)

// TimeWindow buckets a clock time into one of four departure/arrival
// windows. The bucket is derived from the clock only, never the date.
type TimeWindow string

const (
	WindowEarlyMorning TimeWindow = "before_6am"
	WindowMorning      TimeWindow = "6am_to_12pm"
	WindowAfternoon    TimeWindow = "12pm_to_6pm"
	WindowEvening      TimeWindow = "after_6pm"
)

// Filterable is the slice element Apply understands. models.FlightLeg
// and models.Itinerary both satisfy it.
type Filterable interface {
	FareAmount() float64
	StopsLabel() string
	AirlineName() string
	DepartureClock() string
	ArrivalClock() string
}

// Criteria is one search flow's filter state. Empty sets mean
// unrestricted; Apply never mutates the criteria or its input.
type Criteria struct {
	PriceCeiling     float64
	MaxPriceCeiling  float64
	Stops            map[string]bool
	Airlines         map[string]bool
	DepartureWindows map[TimeWindow]bool
	ArrivalWindows   map[TimeWindow]bool
}

// NewCriteria returns an unrestricted criteria set with the ceiling
// parked at the configured maximum.
func NewCriteria(maxPrice float64) *Criteria {
	return &Criteria{
		PriceCeiling:     maxPrice,
		MaxPriceCeiling:  maxPrice,
		Stops:            make(map[string]bool),
		Airlines:         make(map[string]bool),
		DepartureWindows: make(map[TimeWindow]bool),
		ArrivalWindows:   make(map[TimeWindow]bool),
	}
}

// Reset restores the ceiling to its configured maximum and clears all
// set-valued criteria.
func (c *Criteria) Reset() {
	c.PriceCeiling = c.MaxPriceCeiling
	c.Stops = make(map[string]bool)
	c.Airlines = make(map[string]bool)
	c.DepartureWindows = make(map[TimeWindow]bool)
	c.ArrivalWindows = make(map[TimeWindow]bool)
}

// Apply returns the items that pass every criterion, preserving input
// order. A nil or empty input yields an empty slice, never an error.
func Apply[T Filterable](items []T, c *Criteria) []T {
	result := make([]T, 0, len(items))
	if c == nil {
		return append(result, items...)
	}

	for _, item := range items {
		if matches(item, c) {
			result = append(result, item)
		}
	}

	return result
}

func matches(item Filterable, c *Criteria) bool {
	if item.FareAmount() > c.PriceCeiling {
		return false
	}

	if len(c.Stops) > 0 && !containsFold(c.Stops, item.StopsLabel()) {
		return false
	}

	if len(c.Airlines) > 0 && !containsFold(c.Airlines, item.AirlineName()) {
		return false
	}

	if len(c.DepartureWindows) > 0 && !c.DepartureWindows[WindowFor(item.DepartureClock())] {
		return false
	}

	if len(c.ArrivalWindows) > 0 && !c.ArrivalWindows[WindowFor(item.ArrivalClock())] {
		return false
	}

	return true
}

// WindowFor maps a "15:04" clock string to its time window. An
// unparseable clock lands in the morning bucket so a malformed record
// is filterable rather than invisible.
func WindowFor(clock string) TimeWindow {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return WindowMorning
	}

	switch h := t.Hour(); {
	case h < 6:
		return WindowEarlyMorning
	case h < 12:
		return WindowMorning
	case h < 18:
		return WindowAfternoon
	default:
		return WindowEvening
	}
}

func containsFold(set map[string]bool, value string) bool {
	if set[value] {
		return true
	}
	for k := range set {
		if strings.EqualFold(k, value) {
			return true
		}
	}
	return false
}
