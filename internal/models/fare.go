package models

// FareBreakdown decomposes a payable amount into its components.
// GrandTotal is always the sum of the other four fields; breakdowns
// are recomputed from scratch on every input change, never patched.
type FareBreakdown struct {
	BaseFare      float64 `json:"base_fare"`
	TaxAmount     float64 `json:"tax_amount"`
	SeatSurcharge float64 `json:"seat_surcharge"`
	AncillaryFee  float64 `json:"ancillary_fee"`
	GrandTotal    float64 `json:"grand_total"`
	Formatted     string  `json:"formatted,omitempty"`
}
