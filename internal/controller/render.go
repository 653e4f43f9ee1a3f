package controller

import (
	"smartnotes-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// render wraps ctx.Render with the shared layout and moves any pending
// flash message into the template bindings.
func render(ctx *fiber.Ctx, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	if category, message, ok := serverutils.PopFlash(ctx); ok {
		bind["FlashCategory"] = category
		bind["FlashMessage"] = message
	}
	return ctx.Render(name, bind, "layouts/main")
}
