package serverutils

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors escaping the handlers into JSON
// responses. Anything outside the known taxonomy becomes a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		var validationErrs validator.ValidationErrors

		switch {
		case errors.Is(err, ErrValidation):
			status, message = fiber.StatusBadRequest, err.Error()
		case errors.Is(err, ErrUnauthenticated):
			status, message = fiber.StatusUnauthorized, err.Error()
		case errors.Is(err, ErrForbidden):
			status, message = fiber.StatusForbidden, err.Error()
		case errors.Is(err, ErrNotFound):
			status, message = fiber.StatusNotFound, err.Error()
		case errors.As(err, &validationErrs):
			status, message = fiber.StatusBadRequest, validationErrs.Error()
		case errors.As(err, &fiberErr):
			status, message = fiberErr.Code, fiberErr.Message
		default:
			log.Printf("[ERROR] Unhandled request error: %v", err)
		}

		return ctx.Status(status).JSON(fiber.Map{"message": message})
	}
}
