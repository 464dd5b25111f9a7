package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/tripbooking/internal/booking"
	"github.com/dharmasatrya/tripbooking/internal/models"
)

type BookingHandler struct {
	registry *booking.Registry
	router   booking.Router
	logger   *logrus.Logger
	opts     booking.Options
}

func NewBookingHandler(registry *booking.Registry, router booking.Router, logger *logrus.Logger, opts booking.Options) *BookingHandler {
	return &BookingHandler{
		registry: registry,
		router:   router,
		logger:   logger,
		opts:     opts,
	}
}

type createSessionRequest struct {
	Itinerary *models.Itinerary `json:"itinerary,omitempty"`
	Hotel     *models.Hotel     `json:"hotel,omitempty"`
}

// Create opens a session for a committed itinerary or room and starts
// its countdown.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	var session *booking.Session
	switch {
	case req.Itinerary != nil:
		session = booking.NewFlightSession(*req.Itinerary, h.router, h.logger, h.opts)
	case req.Hotel != nil:
		session = booking.NewHotelSession(*req.Hotel, h.router, h.logger, h.opts)
	default:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Either itinerary or hotel is required",
			Code:    http.StatusBadRequest,
		})
	}

	h.registry.Add(session)
	return c.JSON(http.StatusCreated, session.Snapshot())
}

func (h *BookingHandler) Get(c echo.Context) error {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		return h.notFound(c)
	}
	return c.JSON(http.StatusOK, session.Snapshot())
}

type editFieldRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (h *BookingHandler) EditField(c echo.Context) error {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		return h.notFound(c)
	}

	var req editFieldRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "A field name is required",
			Code:    http.StatusBadRequest,
		})
	}

	if err := session.EditField(req.Name, req.Value); err != nil {
		return h.sessionConflict(c, err)
	}
	return c.JSON(http.StatusOK, session.Snapshot())
}

func (h *BookingHandler) ToggleInternational(c echo.Context) error {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		return h.notFound(c)
	}

	if err := session.ToggleInternational(); err != nil {
		return h.sessionConflict(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session":         session.Snapshot(),
		"required_fields": session.RequiredIdentityFields(),
	})
}

type selectSeatRequest struct {
	Row      int    `json:"row"`
	Column   string `json:"column"`
	LegIndex int    `json:"leg_index"`
}

func (h *BookingHandler) SelectSeat(c echo.Context) error {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		return h.notFound(c)
	}

	var req selectSeatRequest
	if err := c.Bind(&req); err != nil || len(req.Column) != 1 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "row, single-letter column and leg_index are required",
			Code:    http.StatusBadRequest,
		})
	}

	if err := session.SelectSeat(req.Row, req.Column[0], req.LegIndex); err != nil {
		return h.sessionConflict(c, err)
	}
	return c.JSON(http.StatusOK, session.Snapshot())
}

type submitRequest struct {
	AllowSeatless bool `json:"allow_seatless"`
}

func (h *BookingHandler) Submit(c echo.Context) error {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		return h.notFound(c)
	}

	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	missing, err := session.Submit(req.AllowSeatless)
	switch {
	case errors.Is(err, booking.ErrIncompleteForm):
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":          "validation_incomplete",
			"missing_fields": missing,
		})
	case errors.Is(err, booking.ErrSeatsUnselected):
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":             "seats_unselected",
			"override_required": true,
		})
	case err != nil:
		return h.sessionConflict(c, err)
	}

	return c.JSON(http.StatusAccepted, session.Snapshot())
}

func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.registry.Remove(c.Param("id")); err != nil {
		return h.notFound(c)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BookingHandler) notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "Booking session not found",
		Code:    http.StatusNotFound,
	})
}

func (h *BookingHandler) sessionConflict(c echo.Context, err error) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "session_state",
		Message: err.Error(),
		Code:    http.StatusConflict,
	})
}
