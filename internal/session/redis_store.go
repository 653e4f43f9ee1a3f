package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis so they survive restarts and can be
// shared between instances. Selected via SESSION_STORE=redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

func (s *RedisStore) Save(session *Session) {
	payload, err := json.Marshal(session)
	if err != nil {
		return
	}
	s.client.Set(context.Background(), redisKeyPrefix+session.ID, payload, time.Until(session.ExpiresAt))
}

func (s *RedisStore) Get(sessionID string) (*Session, bool) {
	payload, err := s.client.Get(context.Background(), redisKeyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, false
	}
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (s *RedisStore) Delete(sessionID string) {
	s.client.Del(context.Background(), redisKeyPrefix+sessionID)
}
