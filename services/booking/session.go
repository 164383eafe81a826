package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trimly/config"
	"trimly/models"
	"trimly/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore caches checkout carts by session id for the lifetime of one
// checkout. Carts are never persisted beyond this cache; only created
// appointments reach the database.
type SessionStore interface {
	Save(ctx context.Context, cart *models.BookingCart) error
	Get(ctx context.Context, sessionID string) (*models.BookingCart, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps carts as JSON in Redis with a rolling TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore builds the store on the dedicated checkout cache
// client, with the TTL from configuration.
func NewRedisSessionStore() *RedisSessionStore {
	ttl := time.Duration(config.AppConfig.CheckoutSessionTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSessionStore{
		Client: utils.GetCheckoutCacheClient(),
		TTL:    ttl,
	}
}

func (s *RedisSessionStore) Save(ctx context.Context, cart *models.BookingCart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	if err := s.Client.Set(ctx, cart.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store checkout session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingCart, error) {
	data, err := s.Client.Get(ctx, sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load checkout session: %w", err)
	}
	var cart models.BookingCart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session: %w", err)
	}
	return &cart, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, sessionID).Err()
}
