package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/tripbooking/internal/models"
)

// Route is the cache unit: one directed (from, to, date) triple. All
// trip modes decompose into route lookups, so round-trip and
// multi-city searches share cached entries with one-way searches.
type Route struct {
	From string
	To   string
	Date string
}

type Cache interface {
	Get(ctx context.Context, route Route) ([]models.FlightLeg, bool)
	Set(ctx context.Context, route Route, legs []models.FlightLeg) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, route Route) ([]models.FlightLeg, bool) {
	key := generateKey(route)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var legs []models.FlightLeg
	if err := json.Unmarshal(data, &legs); err != nil {
		return nil, false
	}

	return legs, true
}

func (c *RedisCache) Set(ctx context.Context, route Route, legs []models.FlightLeg) error {
	key := generateKey(route)

	data, err := json.Marshal(legs)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, route Route) ([]models.FlightLeg, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, route Route, legs []models.FlightLeg) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func generateKey(route Route) string {
	data, _ := json.Marshal(route)
	hash := sha256.Sum256(data)
	return "legs:" + hex.EncodeToString(hash[:])
}
