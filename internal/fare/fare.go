package fare

import (
	"math"

	"github.com/dharmasatrya/tripbooking/internal/models"
	"github.com/dharmasatrya/tripbooking/internal/seatmap"
	"github.com/dharmasatrya/tripbooking/pkg/currency"
)

const (
	FlightTaxRate = 0.12
	HotelTaxRate  = 0.18
)

// Flight aggregates a flight fare: tax is rounded to the nearest unit,
// then base, tax, seat surcharge and baggage fee are summed.
func Flight(baseFare float64, selection seatmap.Selection, baggageFee float64) models.FareBreakdown {
	tax := math.Round(baseFare * FlightTaxRate)
	surcharge := selection.Surcharge()
	total := baseFare + tax + surcharge + baggageFee

	return models.FareBreakdown{
		BaseFare:      baseFare,
		TaxAmount:     tax,
		SeatSurcharge: surcharge,
		AncillaryFee:  baggageFee,
		GrandTotal:    total,
		Formatted:     currency.FormatINR(total),
	}
}

// Hotel aggregates a room fare. Hotel tax floors where flight tax
// rounds; the asymmetry is long-standing observed behavior and is kept
// as is.
func Hotel(roomPrice float64) models.FareBreakdown {
	tax := math.Floor(roomPrice * HotelTaxRate)
	total := roomPrice + tax

	return models.FareBreakdown{
		BaseFare:   roomPrice,
		TaxAmount:  tax,
		GrandTotal: total,
		Formatted:  currency.FormatINR(total),
	}
}

// RoundTripTotal is the plain sum of the two independently selected
// sides. The split view carries no combined tax or surcharge step.
func RoundTripTotal(outboundPrice, inboundPrice float64) float64 {
	return outboundPrice + inboundPrice
}
