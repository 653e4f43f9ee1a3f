package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Manager issues, resolves and destroys browser sessions. The cookie holds
// a signed session ID; the user ID lives only in the server-side record.
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: secret,
		ttl:    ttl,
	}
}

func (m *Manager) Issue(ctx *fiber.Ctx, userId uint) error {
	id, err := NewSessionID()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(m.ttl)
	m.store.Save(&Session{
		ID:        id,
		UserID:    userId,
		ExpiresAt: expiresAt,
	})

	ctx.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    EncodeCookie(id, m.secret),
		Expires:  expiresAt,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return nil
}

// Resolve returns the user ID bound to the request cookie, if any.
// Missing, forged and expired sessions all resolve to absent.
func (m *Manager) Resolve(ctx *fiber.Ctx) (uint, bool) {
	raw := ctx.Cookies(CookieName)
	if raw == "" {
		return 0, false
	}
	id, ok := DecodeCookie(raw, m.secret)
	if !ok {
		return 0, false
	}
	session, found := m.store.Get(id)
	if !found {
		return 0, false
	}
	if time.Now().After(session.ExpiresAt) {
		m.store.Delete(id)
		return 0, false
	}
	return session.UserID, true
}

func (m *Manager) Destroy(ctx *fiber.Ctx) {
	if raw := ctx.Cookies(CookieName); raw != "" {
		if id, ok := DecodeCookie(raw, m.secret); ok {
			m.store.Delete(id)
		}
	}
	ctx.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
