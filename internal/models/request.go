package models

type TripMode string

const (
	ModeOneWay    TripMode = "one_way"
	ModeRoundTrip TripMode = "round_trip"
	ModeMultiCity TripMode = "multi_city"
)

type SegmentQuery struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

type SearchQuery struct {
	Mode       TripMode       `json:"mode"`
	From       string         `json:"from,omitempty"`
	To         string         `json:"to,omitempty"`
	Date       string         `json:"date,omitempty"`
	ReturnDate *string        `json:"return_date,omitempty"`
	Segments   []SegmentQuery `json:"segments,omitempty"`
	SessionKey string         `json:"session_key,omitempty"`
}

func (q *SearchQuery) Validate() error {
	if q.Mode == "" {
		q.Mode = ModeOneWay
	}

	switch q.Mode {
	case ModeOneWay:
		return q.validateEndpoints()
	case ModeRoundTrip:
		if err := q.validateEndpoints(); err != nil {
			return err
		}
		if q.ReturnDate == nil || *q.ReturnDate == "" {
			return ErrMissingReturnDate
		}
		return nil
	case ModeMultiCity:
		if len(q.Segments) == 0 {
			return ErrMissingSegments
		}
		for _, seg := range q.Segments {
			if seg.From == "" || seg.To == "" {
				return ErrMissingSegmentRoute
			}
		}
		return nil
	default:
		return ErrUnknownMode
	}
}

func (q *SearchQuery) validateEndpoints() error {
	if q.From == "" {
		return ErrMissingFrom
	}
	if q.To == "" {
		return ErrMissingTo
	}
	if q.Date == "" {
		return ErrMissingDate
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingFrom         ValidationError = "from is required"
	ErrMissingTo           ValidationError = "to is required"
	ErrMissingDate         ValidationError = "date is required"
	ErrMissingReturnDate   ValidationError = "return_date is required for round trips"
	ErrMissingSegments     ValidationError = "at least one segment is required"
	ErrMissingSegmentRoute ValidationError = "every segment needs from and to"
	ErrUnknownMode         ValidationError = "unknown trip mode"
)
