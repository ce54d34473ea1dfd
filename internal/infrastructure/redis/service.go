package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/soulnest/soulnest/internal/config"
)

// Nil is returned by Get when the key does not exist.
const Nil = redis.Nil

type Service struct {
	client *redis.Client
}

// NewService connects to the configured Redis server. It returns nil when
// Redis is not configured or not reachable.
func NewService() *Service {
	url := config.GetRedisURL()

	if url == "" {
		log.Warn().Msg("Redis URL not configured - service will be unavailable")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     url,
		Password: config.GetRedisPassword(),
		DB:       config.GetRedisDB(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Error().
			Err(err).
			Str("addr", url).
			Msg("Failed to establish Redis connection")
		client.Close()
		return nil
	}

	return NewServiceWithClient(client)
}

// NewServiceWithClient wraps an existing client.
func NewServiceWithClient(client *redis.Client) *Service {
	return &Service{client: client}
}

// Set stores a value in Redis with an optional expiration
func (s *Service) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if err := s.client.Set(ctx, key, value, expiration).Err(); err != nil {
		log.Error().
			Err(err).
			Str("key", key).
			Dur("expiration", expiration).
			Msg("Redis SET operation failed")
		return err
	}
	return nil
}

// Get retrieves a value from Redis; a missing key yields Nil
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		log.Error().
			Err(err).
			Str("key", key).
			Msg("Redis GET operation failed")
		return "", err
	}
	return val, err
}

// Delete removes keys from Redis
func (s *Service) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// RPush appends values to the list at key
func (s *Service) RPush(ctx context.Context, key string, values ...interface{}) error {
	if err := s.client.RPush(ctx, key, values...).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis RPUSH operation failed")
		return err
	}
	return nil
}

// LPush prepends values to the list at key
func (s *Service) LPush(ctx context.Context, key string, values ...interface{}) error {
	if err := s.client.LPush(ctx, key, values...).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis LPUSH operation failed")
		return err
	}
	return nil
}

// LRange returns the list elements between start and stop inclusive
func (s *Service) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	vals, err := s.client.LRange(ctx, key, start, stop).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis LRANGE operation failed")
		return nil, err
	}
	return vals, nil
}

// LRem removes occurrences of value from the list at key
func (s *Service) LRem(ctx context.Context, key string, count int64, value interface{}) error {
	return s.client.LRem(ctx, key, count, value).Err()
}

// Ping checks if Redis is accessible
func (s *Service) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Service) Close() error {
	return s.client.Close()
}
