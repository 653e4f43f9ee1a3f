package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"smartnotes-be/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(target string, values url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func getRequest(target string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name && c.Value != "" {
			return c
		}
	}
	return nil
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// registerViaWeb drives the register form and returns the session cookie.
func registerViaWeb(t *testing.T, ta *testApp, email, password string) *http.Cookie {
	t.Helper()

	resp, err := ta.app.Test(formRequest("/register", url.Values{
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	cookie := findCookie(resp, session.CookieName)
	require.NotNil(t, cookie, "register should start a session")
	return cookie
}

func TestWebRequiresLogin(t *testing.T) {
	ta := newTestApp(t)

	for _, target := range []string{"/", "/notes/new", "/notes/1"} {
		resp, err := ta.app.Test(getRequest(target))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode, "GET %s", target)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	}
}

func TestWebRegister(t *testing.T) {
	t.Run("success logs the user in", func(t *testing.T) {
		ta := newTestApp(t)
		cookie := registerViaWeb(t, ta, "alice@example.com", "secret1")

		resp, err := ta.app.Test(getRequest("/", cookie))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "My Notes")
	})

	t.Run("duplicate email redirects to login", func(t *testing.T) {
		ta := newTestApp(t)
		registerViaWeb(t, ta, "alice@example.com", "secret1")

		resp, err := ta.app.Test(formRequest("/register", url.Values{
			"email":            {"alice@example.com"},
			"password":         {"secret1"},
			"confirm_password": {"secret1"},
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("validation failure re-renders the form", func(t *testing.T) {
		ta := newTestApp(t)

		resp, err := ta.app.Test(formRequest("/register", url.Values{
			"email":            {"bob@example.com"},
			"password":         {"secret1"},
			"confirm_password": {"different"},
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Passwords do not match.")
	})
}

func TestWebLogin(t *testing.T) {
	ta := newTestApp(t)
	ta.registerUser(t, "alice@example.com", "secret1")

	t.Run("valid credentials start a session", func(t *testing.T) {
		resp, err := ta.app.Test(formRequest("/login", url.Values{
			"email":    {"alice@example.com"},
			"password": {"secret1"},
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
		assert.NotNil(t, findCookie(resp, session.CookieName))
	})

	t.Run("wrong password re-renders with a generic message", func(t *testing.T) {
		resp, err := ta.app.Test(formRequest("/login", url.Values{
			"email":    {"alice@example.com"},
			"password": {"wrong-password"},
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Invalid email or password.")
	})

	t.Run("unknown email gets the same message", func(t *testing.T) {
		resp, err := ta.app.Test(formRequest("/login", url.Values{
			"email":    {"nobody@example.com"},
			"password": {"secret1"},
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Invalid email or password.")
	})
}

func TestWebLogout(t *testing.T) {
	ta := newTestApp(t)
	cookie := registerViaWeb(t, ta, "alice@example.com", "secret1")

	resp, err := ta.app.Test(getRequest("/logout", cookie))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// The old cookie no longer resolves to a session
	resp, err = ta.app.Test(getRequest("/", cookie))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestWebNoteFlow(t *testing.T) {
	ta := newTestApp(t)
	cookie := registerViaWeb(t, ta, "alice@example.com", "secret1")

	t.Run("create", func(t *testing.T) {
		resp, err := ta.app.Test(formRequest("/notes/new", url.Values{
			"title":   {"Groceries"},
			"content": {"Milk, eggs"},
		}, cookie))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))

		resp, err = ta.app.Test(getRequest("/", cookie))
		require.NoError(t, err)
		assert.Contains(t, readBody(t, resp), "Groceries")
	})

	t.Run("create without title re-renders the form", func(t *testing.T) {
		resp, err := ta.app.Test(formRequest("/notes/new", url.Values{
			"title":   {"   "},
			"content": {"orphan content"},
		}, cookie))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := readBody(t, resp)
		assert.Contains(t, body, "Title is required.")
		assert.Contains(t, body, "orphan content")
	})

	t.Run("view", func(t *testing.T) {
		resp, err := ta.app.Test(getRequest("/notes/1", cookie))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := readBody(t, resp)
		assert.Contains(t, body, "Groceries")
		assert.Contains(t, body, "Milk, eggs")
	})

	t.Run("edit", func(t *testing.T) {
		resp, err := ta.app.Test(formRequest("/notes/1/edit", url.Values{
			"title":   {"Groceries v2"},
			"content": {"Milk only"},
		}, cookie))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/notes/1", resp.Header.Get("Location"))

		resp, err = ta.app.Test(getRequest("/notes/1", cookie))
		require.NoError(t, err)
		assert.Contains(t, readBody(t, resp), "Groceries v2")
	})

	t.Run("delete", func(t *testing.T) {
		resp, err := ta.app.Test(formRequest("/notes/1/delete", url.Values{}, cookie))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))

		// Viewing the deleted note bounces home
		resp, err = ta.app.Test(getRequest("/notes/1", cookie))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	})
}

func TestWebNoteOwnership(t *testing.T) {
	ta := newTestApp(t)
	ownerCookie := registerViaWeb(t, ta, "owner@example.com", "secret1")
	intruderCookie := registerViaWeb(t, ta, "intruder@example.com", "secret1")

	resp, err := ta.app.Test(formRequest("/notes/new", url.Values{
		"title": {"Private"},
	}, ownerCookie))
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	// Both foreign and missing notes bounce home rather than leaking state
	for _, target := range []string{"/notes/1", "/notes/1/edit", "/notes/9999"} {
		resp, err := ta.app.Test(getRequest(target, intruderCookie))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode, "GET %s", target)
		assert.Equal(t, "/", resp.Header.Get("Location"), "GET %s", target)
	}
}
