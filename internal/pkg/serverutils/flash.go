package serverutils

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookieName = "smartnotes_flash"

// SetFlash queues a one-shot message for the next rendered page.
func SetFlash(ctx *fiber.Ctx, category, message string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// PopFlash reads and clears the queued message, if any.
func PopFlash(ctx *fiber.Ctx) (category, message string, ok bool) {
	raw := ctx.Cookies(flashCookieName)
	if raw == "" {
		return "", "", false
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(decoded, "|", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
