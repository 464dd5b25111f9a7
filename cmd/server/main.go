package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/tripbooking/internal/booking"
	"github.com/dharmasatrya/tripbooking/internal/cache"
	"github.com/dharmasatrya/tripbooking/internal/catalog"
	"github.com/dharmasatrya/tripbooking/internal/config"
	"github.com/dharmasatrya/tripbooking/internal/handler"
	"github.com/dharmasatrya/tripbooking/internal/ratelimit"
	"github.com/dharmasatrya/tripbooking/internal/search"
)

// maxFilterPrice is the configured ceiling a reset filter parks at.
const maxFilterPrice = 50000

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load(logger)
	if level, err := logrus.ParseLevel(cfg.Server.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	adapter, err := catalog.NewStaticAdapter(cfg.Catalog.Latency)
	if err != nil {
		logger.WithError(err).Fatal("failed to load catalog data")
	}

	rateLimiter := ratelimit.NewSourceLimiterWithDefaults()
	rateLimiter.SetSourceLimit(adapter.Name(), 20, 40)

	var legCache cache.Cache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.Cache.RedisHost,
			Port: cfg.Cache.RedisPort,
			TTL:  cfg.Cache.RedisTTL,
		})
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to Redis")
		}
		legCache = redisCache
		logger.WithFields(logrus.Fields{
			"host": cfg.Cache.RedisHost,
			"port": cfg.Cache.RedisPort,
			"ttl":  cfg.Cache.RedisTTL,
		}).Info("redis cache enabled")
	} else {
		legCache = cache.NewNoOpCache()
		logger.Info("cache disabled")
	}
	defer legCache.Close()

	searchService := search.NewService(adapter, legCache, rateLimiter, logger)

	registry := booking.NewRegistry()
	defer registry.CloseAll()
	router := booking.NewLogRouter(logger)

	searchHandler := handler.NewSearchHandler(searchService, maxFilterPrice)
	catalogHandler := handler.NewCatalogHandler(searchService)
	bookingHandler := handler.NewBookingHandler(registry, router, logger, booking.Options{
		SubmitDelay: cfg.Booking.SubmitDelay,
		BaggageFee:  cfg.Booking.BaggageFee,
	})

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	api.GET("/airports", catalogHandler.Airports)
	api.GET("/hotels", catalogHandler.Hotels)
	api.GET("/flights/:legIndex/seatmap", catalogHandler.SeatMap)
	api.POST("/fare/flight", catalogHandler.FlightFare)
	api.POST("/fare/hotel", catalogHandler.HotelFare)
	api.POST("/fare/roundtrip", catalogHandler.RoundTripFare)
	api.GET("/listings", catalogHandler.Listings)

	api.POST("/bookings", bookingHandler.Create)
	api.GET("/bookings/:id", bookingHandler.Get)
	api.PATCH("/bookings/:id/field", bookingHandler.EditField)
	api.POST("/bookings/:id/international", bookingHandler.ToggleInternational)
	api.POST("/bookings/:id/seats", bookingHandler.SelectSeat)
	api.POST("/bookings/:id/submit", bookingHandler.Submit)
	api.DELETE("/bookings/:id", bookingHandler.Delete)

	e.GET("/health", handler.HealthHandler)

	logger.WithField("port", cfg.Server.Port).Info("starting trip booking server")

	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
