package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupied_KnownValues(t *testing.T) {
	// (7 * 'B' + 0) = 462, divisible by 7.
	assert.True(t, Occupied(7, 'B', 0))
	// (1 * 'A' + 0) = 65, remainder 2.
	assert.False(t, Occupied(1, 'A', 0))
}

func TestOccupied_Deterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.True(t, Occupied(7, 'B', 0))
		assert.False(t, Occupied(1, 'A', 0))
	}
}

func TestOccupied_LegIndexShiftsOccupancy(t *testing.T) {
	// 462 + 1 is not divisible by 7; the same physical seat can be
	// free on another leg.
	assert.True(t, Occupied(7, 'B', 0))
	assert.False(t, Occupied(7, 'B', 1))
}

func TestTierAndPrice(t *testing.T) {
	tests := []struct {
		row       int
		wantTier  Tier
		wantPrice float64
	}{
		{1, TierPremium, 600},
		{2, TierPremium, 600},
		{3, TierPremium, 600},
		{4, TierStandard, 350},
		{10, TierStandard, 350},
		{15, TierStandard, 350},
	}

	for _, tc := range tests {
		tier := TierFor(tc.row)
		assert.Equal(t, tc.wantTier, tier, "row %d", tc.row)
		assert.Equal(t, tc.wantPrice, TierPrice(tier), "row %d", tc.row)
	}
}

func TestGrid_Dimensions(t *testing.T) {
	grid := Grid(0)

	require.Len(t, grid, 15)
	for _, row := range grid {
		require.Len(t, row, 6)
	}

	assert.Equal(t, 1, grid[0][0].Row)
	assert.Equal(t, "A", grid[0][0].Column)
	assert.Equal(t, 15, grid[14][5].Row)
	assert.Equal(t, "F", grid[14][5].Column)
}

func TestSelection_OccupiedSeatIsNoOp(t *testing.T) {
	sel := NewSelection()

	changed := sel.Select(7, 'B', 0)

	assert.False(t, changed)
	assert.Empty(t, sel)
}

func TestSelection_OutOfRangeIsNoOp(t *testing.T) {
	sel := NewSelection()

	assert.False(t, sel.Select(0, 'A', 0))
	assert.False(t, sel.Select(16, 'A', 0))
	assert.False(t, sel.Select(5, 'G', 0))
	assert.Empty(t, sel)
}

func TestSelection_ReplacesPerLeg(t *testing.T) {
	sel := NewSelection()

	require.True(t, sel.Select(1, 'A', 0))
	require.True(t, sel.Select(10, 'C', 0))

	require.Len(t, sel, 1)
	assert.Equal(t, 10, sel[0].Row)
	assert.Equal(t, "C", sel[0].Column)
}

func TestSelection_OtherLegsUntouched(t *testing.T) {
	sel := NewSelection()

	require.True(t, sel.Select(1, 'A', 0))
	require.True(t, sel.Select(1, 'A', 1))
	require.True(t, sel.Select(10, 'C', 1))

	require.Len(t, sel, 2)
	assert.Equal(t, 1, sel[0].Row)
	assert.Equal(t, 10, sel[1].Row)
}

func TestSelection_Surcharge(t *testing.T) {
	sel := NewSelection()

	require.True(t, sel.Select(1, 'A', 0))  // premium, 600
	require.True(t, sel.Select(10, 'C', 1)) // standard, 350

	assert.Equal(t, 950.0, sel.Surcharge())
}

func TestSelection_Covers(t *testing.T) {
	sel := NewSelection()
	require.True(t, sel.Select(1, 'A', 0))

	assert.True(t, sel.Covers(1))
	assert.False(t, sel.Covers(2))
}
