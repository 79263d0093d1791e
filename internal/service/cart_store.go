package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Redis key prefix for per-user carts
	cartKeyPrefix = "cart:"

	// Carts expire after a month of inactivity
	cartTTL = 30 * 24 * time.Hour
)

// CartStore keeps each user's shopping cart as a JSON document in Redis.
// Carts are ephemeral client state, not order history, so they never touch
// the database.
type CartStore struct {
	redisClient *redis.Client
}

func NewCartStore(redisClient *redis.Client) *CartStore {
	return &CartStore{redisClient: redisClient}
}

func cartKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", cartKeyPrefix, userID.String())
}

// Get returns the user's cart, or an empty cart when none is stored
func (s *CartStore) Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	data, err := s.redisClient.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
		}
		return nil, err
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save writes the cart back, refreshing its TTL
func (s *CartStore) Save(ctx context.Context, cart *entity.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.redisClient.Set(ctx, cartKey(cart.UserID), data, cartTTL).Err()
}

// Clear drops the user's cart entirely
func (s *CartStore) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.redisClient.Del(ctx, cartKey(userID)).Err()
}
