package session

import "time"

// Session is the server-side record behind a logged-in browser cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store persists sessions between requests. Implementations are expected
// to drop records on their own once the TTL passes; Get must treat an
// expired or missing record as absent.
type Store interface {
	Save(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}
