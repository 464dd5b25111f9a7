package booking

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/tripbooking/internal/models"
)

type captureRouter struct {
	handedOff chan Payload
}

func newCaptureRouter() *captureRouter {
	return &captureRouter{handedOff: make(chan Payload, 1)}
}

func (r *captureRouter) HandOff(payload Payload) {
	r.handedOff <- payload
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func singleLegItinerary() models.Itinerary {
	return models.NewItinerary(models.FlightLeg{ID: "A", Origin: "DEL", Destination: "BOM", Price: 10000})
}

func twoLegItinerary() models.Itinerary {
	return models.NewItinerary(
		models.FlightLeg{ID: "A", Origin: "DEL", Destination: "BLR", Price: 5950},
		models.FlightLeg{ID: "B", Origin: "BLR", Destination: "MAA", Price: 2890},
	)
}

// quietOpts keeps the background ticker out of the way so tests drive
// the countdown through Tick directly.
func quietOpts() Options {
	return Options{
		TickInterval: time.Hour,
		SubmitDelay:  10 * time.Millisecond,
	}
}

func newTestSession(t *testing.T, it models.Itinerary, router Router) *Session {
	t.Helper()
	s := NewFlightSession(it, router, testLogger(), quietOpts())
	t.Cleanup(s.Close)
	return s
}

func fillContactFields(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.EditField("first_name", "Asha"))
	require.NoError(t, s.EditField("last_name", "Iyer"))
	require.NoError(t, s.EditField("email", "asha@example.com"))
	require.NoError(t, s.EditField("phone", "9876543210"))
}

func TestSession_StartsActiveWithFullCountdown(t *testing.T) {
	s := newTestSession(t, singleLegItinerary(), newCaptureRouter())

	assert.Equal(t, StatusActive, s.Status())
	assert.Equal(t, CountdownSeconds, s.Countdown())
	assert.False(t, s.Expired())
}

func TestSession_TickDecrementsByOne(t *testing.T) {
	s := newTestSession(t, singleLegItinerary(), newCaptureRouter())

	s.Tick()
	assert.Equal(t, CountdownSeconds-1, s.Countdown())

	s.Tick()
	s.Tick()
	assert.Equal(t, CountdownSeconds-3, s.Countdown())
}

func TestSession_CountdownFloorsAtZeroAndStaysActive(t *testing.T) {
	s := newTestSession(t, singleLegItinerary(), newCaptureRouter())

	for i := 0; i < CountdownSeconds+25; i++ {
		s.Tick()
	}

	assert.Equal(t, 0, s.Countdown())
	assert.True(t, s.Expired())
	// Expiry is advisory; the session does not leave Active.
	assert.Equal(t, StatusActive, s.Status())
}

func TestSession_ExpiryDoesNotBlockSubmit(t *testing.T) {
	router := newCaptureRouter()
	s := newTestSession(t, singleLegItinerary(), router)
	fillContactFields(t, s)

	for i := 0; i < CountdownSeconds; i++ {
		s.Tick()
	}
	require.True(t, s.Expired())

	missing, err := s.Submit(false)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestSession_EditFieldNoValidation(t *testing.T) {
	s := newTestSession(t, singleLegItinerary(), newCaptureRouter())

	require.NoError(t, s.EditField("email", "not-an-email"))

	assert.Equal(t, "not-an-email", s.Snapshot().Form["email"])
}

func TestSession_ToggleInternationalKeepsValues(t *testing.T) {
	s := newTestSession(t, singleLegItinerary(), newCaptureRouter())

	assert.Equal(t, []string{"gov_id_type", "gov_id_number"}, s.RequiredIdentityFields())

	require.NoError(t, s.EditField("gov_id_type", "aadhaar"))
	require.NoError(t, s.ToggleInternational())

	assert.Equal(t, []string{"passport_number", "passport_expiry"}, s.RequiredIdentityFields())
	// The now-unused subset keeps what was typed into it.
	assert.Equal(t, "aadhaar", s.Snapshot().Form["gov_id_type"])

	require.NoError(t, s.ToggleInternational())
	assert.Equal(t, []string{"gov_id_type", "gov_id_number"}, s.RequiredIdentityFields())
}

func TestSession_SubmitMissingFields(t *testing.T) {
	s := newTestSession(t, singleLegItinerary(), newCaptureRouter())
	require.NoError(t, s.EditField("first_name", "Asha"))

	missing, err := s.Submit(false)

	require.ErrorIs(t, err, ErrIncompleteForm)
	assert.ElementsMatch(t, []string{"last_name", "email", "phone"}, missing)
	assert.Equal(t, StatusActive, s.Status())
}

func TestSession_MultiLegNeedsSeatsOrOverride(t *testing.T) {
	s := newTestSession(t, twoLegItinerary(), newCaptureRouter())
	fillContactFields(t, s)

	_, err := s.Submit(false)
	require.ErrorIs(t, err, ErrSeatsUnselected)
	assert.Equal(t, StatusActive, s.Status())

	_, err = s.Submit(true)
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitting, s.Status())
}

func TestSession_MultiLegFullSeatCoverage(t *testing.T) {
	s := newTestSession(t, twoLegItinerary(), newCaptureRouter())
	fillContactFields(t, s)

	require.NoError(t, s.SelectSeat(1, 'A', 0))
	require.NoError(t, s.SelectSeat(1, 'A', 1))

	_, err := s.Submit(false)
	require.NoError(t, err)
}

func TestSession_ConfirmsAndHandsOff(t *testing.T) {
	router := newCaptureRouter()
	s := newTestSession(t, singleLegItinerary(), router)
	fillContactFields(t, s)

	_, err := s.Submit(false)
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitting, s.Status())

	select {
	case payload := <-router.handedOff:
		assert.Equal(t, s.ID(), payload.SessionID)
		require.NotNil(t, payload.Itinerary)
		assert.Equal(t, 11200.0, payload.Fare.GrandTotal)
		assert.Equal(t, "Asha", payload.Form["first_name"])
	case <-time.After(time.Second):
		t.Fatal("router never received the confirmation payload")
	}

	assert.Equal(t, StatusConfirmed, s.Status())
}

func TestSession_CountdownFrozenWhileSubmitting(t *testing.T) {
	s := newTestSession(t, singleLegItinerary(), newCaptureRouter())
	fillContactFields(t, s)

	before := s.Countdown()
	_, err := s.Submit(false)
	require.NoError(t, err)

	s.Tick()
	s.Tick()

	assert.Equal(t, before, s.Countdown())
}

func TestSession_CloseStopsTicks(t *testing.T) {
	s := NewFlightSession(singleLegItinerary(), newCaptureRouter(), testLogger(), quietOpts())

	s.Tick()
	before := s.Countdown()

	s.Close()

	s.Tick()
	s.Tick()
	assert.Equal(t, before, s.Countdown(), "no tick may mutate state after teardown")

	assert.ErrorIs(t, s.EditField("first_name", "x"), ErrSessionClosed)
	_, err := s.Submit(false)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSession_CloseBeforeConfirmCancelsHandOff(t *testing.T) {
	router := newCaptureRouter()
	s := NewFlightSession(singleLegItinerary(), router, testLogger(), Options{
		TickInterval: time.Hour,
		SubmitDelay:  200 * time.Millisecond,
	})
	fillContactFields(t, s)

	_, err := s.Submit(false)
	require.NoError(t, err)

	s.Close()

	select {
	case <-router.handedOff:
		t.Fatal("closed session must not confirm")
	case <-time.After(300 * time.Millisecond):
	}
	assert.NotEqual(t, StatusConfirmed, s.Status())
}

func TestSession_BackgroundCountdownTicks(t *testing.T) {
	s := NewFlightSession(singleLegItinerary(), newCaptureRouter(), testLogger(), Options{
		TickInterval: 5 * time.Millisecond,
		SubmitDelay:  10 * time.Millisecond,
	})
	defer s.Close()

	s.Start()

	assert.Eventually(t, func() bool {
		return s.Countdown() < CountdownSeconds
	}, time.Second, 5*time.Millisecond)
}

func TestSession_FareRecomputedPerSelection(t *testing.T) {
	s := newTestSession(t, singleLegItinerary(), newCaptureRouter())

	base := s.Fare()
	assert.Equal(t, 11200.0, base.GrandTotal)

	require.NoError(t, s.SelectSeat(2, 'C', 0)) // premium, 600
	assert.Equal(t, 11800.0, s.Fare().GrandTotal)

	require.NoError(t, s.SelectSeat(10, 'C', 0)) // replaced by standard, 350
	assert.Equal(t, 11550.0, s.Fare().GrandTotal)
}

func TestHotelSession_FareUsesFloorTax(t *testing.T) {
	h := models.Hotel{ID: "HT-202", Name: "Aerocity Suites", Price: 4999}
	s := NewHotelSession(h, newCaptureRouter(), testLogger(), quietOpts())
	defer s.Close()

	got := s.Fare()
	assert.Equal(t, 899.0, got.TaxAmount)
	assert.Equal(t, 5898.0, got.GrandTotal)
}
