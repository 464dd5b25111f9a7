package search

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/tripbooking/internal/cache"
	"github.com/dharmasatrya/tripbooking/internal/catalog"
	"github.com/dharmasatrya/tripbooking/internal/itinerary"
	"github.com/dharmasatrya/tripbooking/internal/models"
	"github.com/dharmasatrya/tripbooking/internal/ratelimit"
)

// ErrSuperseded is returned when a newer query for the same session
// key arrived while this one was still fetching. The stale result is
// discarded, never merged with the fresh one.
var ErrSuperseded = errors.New("search superseded by a newer query")

// Service turns search queries into itineraries from a fresh catalog
// snapshot. Per session key, only the latest query's result survives.
type Service struct {
	adapter catalog.Adapter
	cache   cache.Cache
	limiter *ratelimit.SourceLimiter
	logger  *logrus.Logger

	mu       sync.Mutex
	inflight map[string]*pending
}

type pending struct {
	cancel context.CancelFunc
	gen    uint64
}

type Result struct {
	Itineraries []models.Itinerary
	Outbound    []models.Itinerary
	Inbound     []models.Itinerary
	Degraded    bool
	CacheHit    bool
}

func NewService(adapter catalog.Adapter, c cache.Cache, limiter *ratelimit.SourceLimiter, logger *logrus.Logger) *Service {
	return &Service{
		adapter:  adapter,
		cache:    c,
		limiter:  limiter,
		logger:   logger,
		inflight: make(map[string]*pending),
	}
}

// Search resolves a query into itineraries. Catalog failure is not
// fatal: the builder synthesizes fallback legs from an empty snapshot
// and the result is marked degraded.
func (s *Service) Search(ctx context.Context, query models.SearchQuery) (*Result, error) {
	ctx, gen := s.begin(ctx, query.SessionKey)

	legs, degraded, cacheHit := s.snapshot(ctx, routesFor(query))
	if err := ctx.Err(); err != nil {
		if query.SessionKey != "" {
			return nil, ErrSuperseded
		}
		return nil, err
	}

	result := &Result{Degraded: degraded, CacheHit: cacheHit}
	switch query.Mode {
	case models.ModeRoundTrip:
		result.Outbound, result.Inbound = itinerary.BuildRoundTrip(query, legs)
	case models.ModeMultiCity:
		result.Itineraries = itinerary.BuildMultiCity(query, legs)
	default:
		result.Itineraries = itinerary.Build(query, legs)
	}

	if !s.stillCurrent(query.SessionKey, gen) {
		return nil, ErrSuperseded
	}
	return result, nil
}

// Airports lists the reference airport records, degrading to an empty
// list on catalog failure.
func (s *Service) Airports(ctx context.Context) []models.AirportRecord {
	if err := s.limiter.Wait(ctx, s.adapter.Name()); err != nil {
		return nil
	}

	airports, err := s.adapter.FetchAirports(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("airport fetch failed, returning empty list")
		return nil
	}
	return airports
}

// Hotels lists rooms for a city. Failure degrades to an empty list;
// the caller renders an empty state instead of an error.
func (s *Service) Hotels(ctx context.Context, city string) []models.Hotel {
	if err := s.limiter.Wait(ctx, s.adapter.Name()); err != nil {
		return nil
	}

	hotels, err := s.adapter.FetchHotels(ctx, city)
	if err != nil {
		s.logger.WithError(err).WithField("city", city).Warn("hotel fetch failed, returning empty list")
		return nil
	}
	return hotels
}

// begin registers this query as the latest for its session key,
// cancelling any fetch still in flight for an older query. A query
// without a session key runs uncoordinated.
func (s *Service) begin(ctx context.Context, sessionKey string) (context.Context, uint64) {
	if sessionKey == "" {
		return ctx, 0
	}

	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.inflight[sessionKey]
	if ok {
		p.cancel()
		p.cancel = cancel
		p.gen++
	} else {
		p = &pending{cancel: cancel, gen: 1}
		s.inflight[sessionKey] = p
	}
	return ctx, p.gen
}

func (s *Service) stillCurrent(sessionKey string, gen uint64) bool {
	if sessionKey == "" {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.inflight[sessionKey]
	return ok && p.gen == gen
}

// snapshot gathers the legs for every route the query needs, serving
// from cache where possible and fetching the catalog once for the
// rest.
func (s *Service) snapshot(ctx context.Context, routes []cache.Route) (legs []models.FlightLeg, degraded, cacheHit bool) {
	var missing []cache.Route
	for _, route := range routes {
		if cached, found := s.cache.Get(ctx, route); found {
			legs = append(legs, cached...)
			cacheHit = true
		} else {
			missing = append(missing, route)
		}
	}

	if len(missing) == 0 {
		return legs, false, cacheHit
	}

	if err := s.limiter.Wait(ctx, s.adapter.Name()); err != nil {
		return legs, true, cacheHit
	}

	fetched, err := s.adapter.FetchFlights(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("flight catalog fetch failed, degrading to fallback synthesis")
		return legs, true, cacheHit
	}

	for _, route := range missing {
		routeLegs := legsMatching(fetched, route)
		legs = append(legs, routeLegs...)
		if err := s.cache.Set(ctx, route, routeLegs); err != nil {
			s.logger.WithError(err).Debug("cache write failed")
		}
	}
	return legs, false, cacheHit
}

func routesFor(query models.SearchQuery) []cache.Route {
	switch query.Mode {
	case models.ModeRoundTrip:
		returnDate := query.Date
		if query.ReturnDate != nil {
			returnDate = *query.ReturnDate
		}
		return []cache.Route{
			{From: query.From, To: query.To, Date: query.Date},
			{From: query.To, To: query.From, Date: returnDate},
		}
	case models.ModeMultiCity:
		routes := make([]cache.Route, 0, len(query.Segments))
		for _, seg := range query.Segments {
			routes = append(routes, cache.Route{From: seg.From, To: seg.To, Date: seg.Date})
		}
		return routes
	default:
		return []cache.Route{{From: query.From, To: query.To, Date: query.Date}}
	}
}

func legsMatching(legs []models.FlightLeg, route cache.Route) []models.FlightLeg {
	var out []models.FlightLeg
	for _, leg := range legs {
		if strings.EqualFold(leg.Origin, route.From) && strings.EqualFold(leg.Destination, route.To) {
			out = append(out, leg)
		}
	}
	return out
}
