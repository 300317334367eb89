package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wanderbook/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "checkout:"

// SessionStore persists in-flight checkout sessions between steps.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Save(ctx context.Context, sess *models.CheckoutSession) error
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore returns a SessionStore backed by Redis. Sessions
// expire after the given TTL; an expired session reads as not found.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read checkout session: %w", err)
	}
	var sess models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session: %w", err)
	}
	return &sess, nil
}

func (s *redisSessionStore) Save(ctx context.Context, sess *models.CheckoutSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+sess.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store checkout session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
