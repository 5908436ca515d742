package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// CookieName is the session cookie set on login.
	CookieName = "session_id"

	keyPrefix  = "session:"
	defaultTTL = 24 * time.Hour
)

var ErrNotFound = errors.New("session not found")

// Data is what a logged-in session carries. The routes only need to
// know who is logged in; authorization is binary in this application.
type Data struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Store keeps sessions server-side in Redis, keyed by an opaque id that
// travels in an HTTP-only cookie.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: defaultTTL}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create persists a new session and returns its id.
func (s *Store) Create(ctx context.Context, data Data) (string, error) {
	id := uuid.NewString()

	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	if err := s.rdb.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", err
	}

	return id, nil
}

// Get resolves a session id back to its data. ErrNotFound covers both
// expiry and ids that never existed.
func (s *Store) Get(ctx context.Context, id string) (Data, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+id).Result()
	if err == redis.Nil {
		return Data{}, ErrNotFound
	}
	if err != nil {
		return Data{}, err
	}

	var data Data
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return Data{}, ErrNotFound
	}
	return data, nil
}

// Destroy removes the session. Destroying an unknown id is a no-op.
func (s *Store) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, keyPrefix+id).Err()
}
