package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/tripbooking/internal/fare"
	"github.com/dharmasatrya/tripbooking/internal/listing"
	"github.com/dharmasatrya/tripbooking/internal/models"
	"github.com/dharmasatrya/tripbooking/internal/search"
	"github.com/dharmasatrya/tripbooking/internal/seatmap"
)

type CatalogHandler struct {
	service *search.Service
}

func NewCatalogHandler(service *search.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Airports(c echo.Context) error {
	airports := h.service.Airports(c.Request().Context())
	if airports == nil {
		airports = []models.AirportRecord{}
	}
	return c.JSON(http.StatusOK, airports)
}

// Hotels degrades to an empty list when the catalog fails; the client
// renders an empty state, never an error page.
func (h *CatalogHandler) Hotels(c echo.Context) error {
	city := c.QueryParam("city")
	hotels := h.service.Hotels(c.Request().Context(), city)
	if hotels == nil {
		hotels = []models.Hotel{}
	}
	return c.JSON(http.StatusOK, hotels)
}

func (h *CatalogHandler) SeatMap(c echo.Context) error {
	legIndex, err := strconv.Atoi(c.Param("legIndex"))
	if err != nil || legIndex < 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "legIndex must be a non-negative integer",
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"leg_index": legIndex,
		"rows":      seatmap.Grid(legIndex),
	})
}

func (h *CatalogHandler) Listings(c echo.Context) error {
	return c.JSON(http.StatusOK, listing.All())
}

type flightFareRequest struct {
	BaseFare   float64 `json:"base_fare"`
	BaggageFee float64 `json:"baggage_fee"`
	Seats      []struct {
		Row      int    `json:"row"`
		Column   string `json:"column"`
		LegIndex int    `json:"leg_index"`
	} `json:"seats,omitempty"`
}

// FlightFare quotes a flight fare for the given seat picks. Occupied
// or out-of-range seats are dropped silently, mirroring selection
// rules.
func (h *CatalogHandler) FlightFare(c echo.Context) error {
	var req flightFareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	selection := seatmap.NewSelection()
	for _, seat := range req.Seats {
		if len(seat.Column) != 1 {
			continue
		}
		selection.Select(seat.Row, seat.Column[0], seat.LegIndex)
	}

	return c.JSON(http.StatusOK, fare.Flight(req.BaseFare, selection, req.BaggageFee))
}

type hotelFareRequest struct {
	RoomPrice float64 `json:"room_price"`
}

func (h *CatalogHandler) HotelFare(c echo.Context) error {
	var req hotelFareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, fare.Hotel(req.RoomPrice))
}

type roundTripFareRequest struct {
	OutboundPrice float64 `json:"outbound_price"`
	InboundPrice  float64 `json:"inbound_price"`
}

func (h *CatalogHandler) RoundTripFare(c echo.Context) error {
	var req roundTripFareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, map[string]float64{
		"total": fare.RoundTripTotal(req.OutboundPrice, req.InboundPrice),
	})
}
