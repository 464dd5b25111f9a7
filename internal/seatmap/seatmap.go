package seatmap

// Deterministic seat inventory for a leg. Occupancy is an arithmetic
// oracle over (row, column, legIndex), so every render and every test
// sees the same cabin; nothing here holds state.

const (
	MinRow = 1
	MaxRow = 15

	MinColumn = 'A'
	MaxColumn = 'F'

	PremiumRowLimit = 3

	PremiumPrice  = 600.0
	StandardPrice = 350.0
)

type Tier string

const (
	TierPremium  Tier = "premium"
	TierStandard Tier = "standard"
)

type Seat struct {
	Row      int     `json:"row"`
	Column   string  `json:"column"`
	Tier     Tier    `json:"tier"`
	Price    float64 `json:"price"`
	Occupied bool    `json:"occupied"`
}

// Occupied reports whether the seat at (row, column) on the given leg
// is taken: (row * ascii(column) + legIndex) mod 7 == 0.
func Occupied(row int, column byte, legIndex int) bool {
	return (row*int(column)+legIndex)%7 == 0
}

// TierFor classifies a row: the first three rows are premium, the rest
// standard.
func TierFor(row int) Tier {
	if row <= PremiumRowLimit {
		return TierPremium
	}
	return TierStandard
}

// TierPrice returns the surcharge for a seat tier.
func TierPrice(tier Tier) float64 {
	if tier == TierPremium {
		return PremiumPrice
	}
	return StandardPrice
}

// SeatAt builds the full seat view for one cabin position.
func SeatAt(row int, column byte, legIndex int) Seat {
	tier := TierFor(row)
	return Seat{
		Row:      row,
		Column:   string(column),
		Tier:     tier,
		Price:    TierPrice(tier),
		Occupied: Occupied(row, column, legIndex),
	}
}

// Grid renders the 15x6 cabin for a leg, row-major.
func Grid(legIndex int) [][]Seat {
	grid := make([][]Seat, 0, MaxRow)
	for row := MinRow; row <= MaxRow; row++ {
		cols := make([]Seat, 0, MaxColumn-MinColumn+1)
		for col := byte(MinColumn); col <= MaxColumn; col++ {
			cols = append(cols, SeatAt(row, col, legIndex))
		}
		grid = append(grid, cols)
	}
	return grid
}

func validPosition(row int, column byte) bool {
	return row >= MinRow && row <= MaxRow && column >= MinColumn && column <= MaxColumn
}
