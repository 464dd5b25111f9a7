package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/tripbooking/internal/filter"
	"github.com/dharmasatrya/tripbooking/internal/models"
	"github.com/dharmasatrya/tripbooking/internal/search"
)

type SearchHandler struct {
	service  *search.Service
	maxPrice float64
}

func NewSearchHandler(service *search.Service, maxPrice float64) *SearchHandler {
	return &SearchHandler{
		service:  service,
		maxPrice: maxPrice,
	}
}

type searchRequest struct {
	models.SearchQuery
	Filters *filterRequest `json:"filters,omitempty"`
}

type filterRequest struct {
	PriceCeiling     float64  `json:"price_ceiling,omitempty"`
	Stops            []string `json:"stops,omitempty"`
	Airlines         []string `json:"airlines,omitempty"`
	DepartureWindows []string `json:"departure_windows,omitempty"`
	ArrivalWindows   []string `json:"arrival_windows,omitempty"`
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	result, err := h.service.Search(ctx, req.SearchQuery)
	if err != nil {
		if errors.Is(err, search.ErrSuperseded) {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "superseded",
				Message: "A newer search replaced this one",
				Code:    http.StatusConflict,
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search flights: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	criteria := h.buildCriteria(req.Filters)

	if req.Mode == models.ModeRoundTrip {
		outbound := filter.Apply(result.Outbound, criteria)
		inbound := filter.Apply(result.Inbound, criteria)

		return c.JSON(http.StatusOK, models.RoundTripResponse{
			Query: req.SearchQuery,
			Metadata: models.SearchMetadata{
				TotalResults:    len(outbound) + len(inbound),
				SearchTimeMs:    time.Since(startTime).Milliseconds(),
				CacheHit:        result.CacheHit,
				CatalogDegraded: result.Degraded,
			},
			Outbound: outbound,
			Inbound:  inbound,
		})
	}

	itineraries := filter.Apply(result.Itineraries, criteria)

	return c.JSON(http.StatusOK, models.SearchResponse{
		Query: req.SearchQuery,
		Metadata: models.SearchMetadata{
			TotalResults:    len(itineraries),
			SearchTimeMs:    time.Since(startTime).Milliseconds(),
			CacheHit:        result.CacheHit,
			CatalogDegraded: result.Degraded,
		},
		Itineraries: itineraries,
	})
}

func (h *SearchHandler) buildCriteria(fr *filterRequest) *filter.Criteria {
	criteria := filter.NewCriteria(h.maxPrice)
	if fr == nil {
		return criteria
	}

	if fr.PriceCeiling > 0 {
		criteria.PriceCeiling = fr.PriceCeiling
	}
	for _, s := range fr.Stops {
		criteria.Stops[s] = true
	}
	for _, a := range fr.Airlines {
		criteria.Airlines[a] = true
	}
	for _, w := range fr.DepartureWindows {
		criteria.DepartureWindows[filter.TimeWindow(w)] = true
	}
	for _, w := range fr.ArrivalWindows {
		criteria.ArrivalWindows[filter.TimeWindow(w)] = true
	}
	return criteria
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
