package session

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	// Expired sessions are purged every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &MemoryStore{
		cache: c,
	}
}

func (s *MemoryStore) Save(session *Session) {
	s.cache.Set(session.ID, session, time.Until(session.ExpiresAt))
}

func (s *MemoryStore) Get(sessionID string) (*Session, bool) {
	if x, found := s.cache.Get(sessionID); found {
		return x.(*Session), true
	}
	return nil, false
}

func (s *MemoryStore) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}
