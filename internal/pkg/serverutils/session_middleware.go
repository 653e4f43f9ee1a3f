package serverutils

import (
	"smartnotes-be/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SessionMiddleware resolves the browser session once per request and puts
// the user ID where handlers pick it up explicitly via CurrentUserId.
func SessionMiddleware(sessions *session.Manager) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if userId, ok := sessions.Resolve(ctx); ok {
			ctx.Locals("user_id", userId)
		}
		return ctx.Next()
	}
}

// RequireSession guards web pages: anonymous requests are sent to /login.
func RequireSession() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if _, ok := ctx.Locals("user_id").(uint); !ok {
			return ctx.Redirect("/login")
		}
		return ctx.Next()
	}
}

// CurrentUserId returns the authenticated user ID for the request, or 0
// when the request is anonymous. Set by SessionMiddleware or JwtMiddleware.
func CurrentUserId(ctx *fiber.Ctx) uint {
	if id, ok := ctx.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}
