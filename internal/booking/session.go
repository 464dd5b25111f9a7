package booking

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/tripbooking/internal/fare"
	"github.com/dharmasatrya/tripbooking/internal/models"
	"github.com/dharmasatrya/tripbooking/internal/seatmap"
)

const (
	// CountdownSeconds is the advisory time budget a session starts
	// with. Hitting zero flags the session but does not block submit;
	// product has not decided whether that grace period is intentional.
	CountdownSeconds = 900

	DefaultTickInterval = time.Second
	DefaultSubmitDelay  = 2 * time.Second
)

type Status string

const (
	StatusActive     Status = "active"
	StatusSubmitting Status = "submitting"
	StatusConfirmed  Status = "confirmed"
)

var (
	ErrIncompleteForm  = errors.New("required booking fields are missing")
	ErrSeatsUnselected = errors.New("one or more legs have no seat selected")
	ErrNotActive       = errors.New("session is not active")
	ErrSessionClosed   = errors.New("session has been torn down")
)

// RequiredContactFields must be non-empty before submit succeeds.
var RequiredContactFields = []string{"first_name", "last_name", "email", "phone"}

var (
	passportFields = []string{"passport_number", "passport_expiry"}
	govIDFields    = []string{"gov_id_type", "gov_id_number"}
)

// Router receives the confirmation payload at the Active→Confirmed
// hand-off and owns whatever happens next; the session relinquishes
// control after the call.
type Router interface {
	HandOff(payload Payload)
}

// Payload is the serializable summary handed to the router.
type Payload struct {
	SessionID string               `json:"session_id"`
	Itinerary *models.Itinerary    `json:"itinerary,omitempty"`
	Hotel     *models.Hotel        `json:"hotel,omitempty"`
	Seats     seatmap.Selection    `json:"seats,omitempty"`
	Fare      models.FareBreakdown `json:"fare"`
	Form      map[string]string    `json:"form"`
}

// Session is one user's timed booking flow. It owns its countdown
// goroutine, its form snapshot and its seat selection; nothing is
// shared between sessions.
type Session struct {
	mu sync.Mutex

	id            string
	itinerary     *models.Itinerary
	hotel         *models.Hotel
	baggageFee    float64
	seats         seatmap.Selection
	form          map[string]string
	international bool
	status        Status
	countdown     int
	expired       bool
	closed        bool

	router       Router
	logger       *logrus.Logger
	tickInterval time.Duration
	submitDelay  time.Duration

	stopCh       chan struct{}
	stopOnce     sync.Once
	confirmTimer *time.Timer
}

// Options tunes session timing; zero values fall back to defaults.
type Options struct {
	TickInterval time.Duration
	SubmitDelay  time.Duration
	BaggageFee   float64
}

// NewFlightSession opens a session for one committed itinerary.
func NewFlightSession(it models.Itinerary, router Router, logger *logrus.Logger, opts Options) *Session {
	s := newSession(router, logger, opts)
	s.itinerary = &it
	return s
}

// NewHotelSession opens a session for one committed room.
func NewHotelSession(h models.Hotel, router Router, logger *logrus.Logger, opts Options) *Session {
	s := newSession(router, logger, opts)
	s.hotel = &h
	return s
}

func newSession(router Router, logger *logrus.Logger, opts Options) *Session {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.SubmitDelay <= 0 {
		opts.SubmitDelay = DefaultSubmitDelay
	}

	return &Session{
		id:           uuid.NewString(),
		seats:        seatmap.NewSelection(),
		form:         make(map[string]string),
		status:       StatusActive,
		countdown:    CountdownSeconds,
		baggageFee:   opts.BaggageFee,
		router:       router,
		logger:       logger,
		tickInterval: opts.TickInterval,
		submitDelay:  opts.SubmitDelay,
		stopCh:       make(chan struct{}),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Start launches the countdown loop. Close is the only way to stop it
// besides confirmation.
func (s *Session) Start() {
	go s.run()
}

func (s *Session) run() {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Tick()
		case <-s.stopCh:
			return
		}
	}
}

// Tick decrements the countdown by one second while the session is
// Active, flooring at zero. Zero flags the session as expired but the
// session stays Active; expiry is advisory only.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.status != StatusActive || s.countdown == 0 {
		return
	}

	s.countdown--
	if s.countdown == 0 {
		s.expired = true
		s.logger.WithField("session_id", s.id).Warn("booking session countdown expired")
	}
}

// EditField records a form value. No validation happens on edit;
// validation is a submit-time concern.
func (s *Session) EditField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.status != StatusActive {
		return ErrNotActive
	}

	s.form[name] = value
	return nil
}

// ToggleInternational swaps which identity-field subset is required.
// Values already typed into the now-unused subset are kept.
func (s *Session) ToggleInternational() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.status != StatusActive {
		return ErrNotActive
	}

	s.international = !s.international
	return nil
}

// RequiredIdentityFields reports which identity subset the form
// currently requires.
func (s *Session) RequiredIdentityFields() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.international {
		return append([]string(nil), passportFields...)
	}
	return append([]string(nil), govIDFields...)
}

// SelectSeat picks a seat for one leg. An occupied seat is a silent
// no-op per inventory rules; re-selecting a leg replaces only that
// leg's entry.
func (s *Session) SelectSeat(row int, column byte, legIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.status != StatusActive {
		return ErrNotActive
	}

	s.seats.Select(row, column, legIndex)
	return nil
}

// Fare recomputes the breakdown from current inputs on every call.
func (s *Session) Fare() models.FareBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fareLocked()
}

func (s *Session) fareLocked() models.FareBreakdown {
	if s.hotel != nil {
		return fare.Hotel(s.hotel.Price)
	}
	if s.itinerary != nil {
		return fare.Flight(s.itinerary.TotalPrice, s.seats, s.baggageFee)
	}
	return models.FareBreakdown{}
}

// Submit validates the contact fields and, for multi-leg itineraries,
// requires either full seat coverage or an explicit seatless override.
// On success the session freezes its countdown, waits the fixed
// submit delay, then confirms and hands the payload to the router.
// On failure the session stays Active and the missing-field set is
// returned.
func (s *Session) Submit(allowSeatless bool) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.status != StatusActive {
		return nil, ErrNotActive
	}

	var missing []string
	for _, field := range RequiredContactFields {
		if s.form[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return missing, ErrIncompleteForm
	}

	if s.itinerary != nil && len(s.itinerary.Legs) > 1 && !allowSeatless {
		if !s.seats.Covers(len(s.itinerary.Legs)) {
			return nil, ErrSeatsUnselected
		}
	}

	s.status = StatusSubmitting
	s.confirmTimer = time.AfterFunc(s.submitDelay, s.confirm)
	s.logger.WithField("session_id", s.id).Info("booking submitted")
	return nil, nil
}

func (s *Session) confirm() {
	s.mu.Lock()

	if s.closed || s.status != StatusSubmitting {
		s.mu.Unlock()
		return
	}

	s.status = StatusConfirmed
	payload := Payload{
		SessionID: s.id,
		Itinerary: s.itinerary,
		Hotel:     s.hotel,
		Seats:     s.seats,
		Fare:      s.fareLocked(),
		Form:      copyForm(s.form),
	}
	router := s.router
	s.mu.Unlock()

	s.stopCountdown()
	s.logger.WithField("session_id", s.id).Info("booking confirmed, handing off")
	if router != nil {
		router.HandOff(payload)
	}
}

// Close tears the session down: the countdown goroutine stops and no
// further tick can mutate state. A confirmed session keeps its final
// state; anything else is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	if s.status != StatusConfirmed {
		s.closed = true
		s.form = make(map[string]string)
		s.seats = seatmap.NewSelection()
	}
	if s.confirmTimer != nil {
		s.confirmTimer.Stop()
	}
	s.mu.Unlock()

	s.stopCountdown()
}

func (s *Session) stopCountdown() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// Snapshot is the read view the presentation layer polls.
type Snapshot struct {
	ID            string               `json:"id"`
	Status        Status               `json:"status"`
	Countdown     int                  `json:"countdown"`
	Expired       bool                 `json:"expired"`
	International bool                 `json:"international"`
	Form          map[string]string    `json:"form"`
	Seats         seatmap.Selection    `json:"seats"`
	Fare          models.FareBreakdown `json:"fare"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:            s.id,
		Status:        s.status,
		Countdown:     s.countdown,
		Expired:       s.expired,
		International: s.international,
		Form:          copyForm(s.form),
		Seats:         copySeats(s.seats),
		Fare:          s.fareLocked(),
	}
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) Countdown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countdown
}

func (s *Session) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

func copyForm(form map[string]string) map[string]string {
	out := make(map[string]string, len(form))
	for k, v := range form {
		out[k] = v
	}
	return out
}

func copySeats(seats seatmap.Selection) seatmap.Selection {
	out := seatmap.NewSelection()
	for k, v := range seats {
		out[k] = v
	}
	return out
}
