package session

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerApp(m *Manager) *fiber.App {
	app := fiber.New()
	app.Get("/login", func(ctx *fiber.Ctx) error {
		return m.Issue(ctx, 7)
	})
	app.Get("/me", func(ctx *fiber.Ctx) error {
		userId, ok := m.Resolve(ctx)
		if !ok {
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}
		return ctx.SendString(strconv.FormatUint(uint64(userId), 10))
	})
	app.Get("/logout", func(ctx *fiber.Ctx) error {
		m.Destroy(ctx)
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestManagerIssueAndResolve(t *testing.T) {
	m := NewManager(NewMemoryStore(time.Hour), "secret", time.Hour)
	app := newManagerApp(m)

	loginResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, loginResp)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestManagerRejectsForgedCookie(t *testing.T) {
	m := NewManager(NewMemoryStore(time.Hour), "secret", time.Hour)
	app := newManagerApp(m)

	loginResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, loginResp)

	// Re-sign the same session ID with a different secret
	id, ok := DecodeCookie(cookie.Value, "secret")
	require.True(t, ok)
	forged := &http.Cookie{Name: CookieName, Value: EncodeCookie(id, "attacker")}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(forged)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestManagerExpiredSession(t *testing.T) {
	m := NewManager(NewMemoryStore(time.Hour), "secret", -time.Minute)
	app := newManagerApp(m)

	loginResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, loginResp)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestManagerDestroy(t *testing.T) {
	m := NewManager(NewMemoryStore(time.Hour), "secret", time.Hour)
	app := newManagerApp(m)

	loginResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, loginResp)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	_, err = app.Test(req)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
