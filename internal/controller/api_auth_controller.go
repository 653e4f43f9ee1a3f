package controller

import (
	"smartnotes-be/internal/dto"
	"smartnotes-be/internal/pkg/serverutils"
	"smartnotes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IApiAuthController interface {
	RegisterRoutes(r fiber.Router)
	Token(ctx *fiber.Ctx) error
}

type apiAuthController struct {
	service service.IAuthService
}

func NewApiAuthController(service service.IAuthService) IApiAuthController {
	return &apiAuthController{service: service}
}

func (c *apiAuthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/auth")
	h.Post("/token", c.Token)
}

// Token exchanges email+password for a bearer token usable on /api/notes.
func (c *apiAuthController) Token(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.IssueToken(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
