package seatmap

// Selection maps a leg index to the one seat chosen for it. Each
// search/booking flow owns its own Selection; there is no sharing
// between sessions.
type Selection map[int]Seat

func NewSelection() Selection {
	return make(Selection)
}

// Select records a seat for the leg. Picking an occupied or
// out-of-range seat is a silent no-op, and picking a second seat for
// the same leg replaces the first; other legs are untouched. Returns
// whether the selection changed.
func (s Selection) Select(row int, column byte, legIndex int) bool {
	if !validPosition(row, column) {
		return false
	}
	if Occupied(row, column, legIndex) {
		return false
	}
	s[legIndex] = SeatAt(row, column, legIndex)
	return true
}

// Clear drops the selection for one leg.
func (s Selection) Clear(legIndex int) {
	delete(s, legIndex)
}

// Surcharge sums the prices of every selected seat.
func (s Selection) Surcharge() float64 {
	total := 0.0
	for _, seat := range s {
		total += seat.Price
	}
	return total
}

// Covers reports whether every leg index in [0, legCount) has a seat.
func (s Selection) Covers(legCount int) bool {
	for i := 0; i < legCount; i++ {
		if _, ok := s[i]; !ok {
			return false
		}
	}
	return true
}
