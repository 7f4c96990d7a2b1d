package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

// sessionTTL bounds how long an abandoned conversation keeps its state.
const sessionTTL = 24 * time.Hour

// RedisStore keeps sessions in Redis as JSON values, letting multiple bot
// instances share conversation state.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a session store over the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the stored session, or a zero Session when the key is missing.
func (s *RedisStore) Get(ctx context.Context, role ports.Role, chatID int64) (ports.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(role, chatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.Session{}, nil
	}
	if err != nil {
		return ports.Session{}, err
	}

	var session ports.Session
	if err = json.Unmarshal(raw, &session); err != nil {
		return ports.Session{}, err
	}

	return session, nil
}

// Put stores the session, replacing any previous state and refreshing the TTL.
func (s *RedisStore) Put(ctx context.Context, role ports.Role, chatID int64, session ports.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(role, chatID), raw, sessionTTL).Err()
}

// Delete removes the session. Deleting a missing session is not an error.
func (s *RedisStore) Delete(ctx context.Context, role ports.Role, chatID int64) error {
	return s.client.Del(ctx, sessionKey(role, chatID)).Err()
}

var _ ports.SessionStore = (*RedisStore)(nil)
