package controller

import (
	"errors"

	"smartnotes-be/internal/dto"
	"smartnotes-be/internal/pkg/serverutils"
	"smartnotes-be/internal/service"
	"smartnotes-be/internal/session"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	ShowRegister(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	ShowLogin(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	sessions *session.Manager
}

func NewAuthController(service service.IAuthService, sessions *session.Manager) IAuthController {
	return &authController{
		service:  service,
		sessions: sessions,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/register", c.ShowRegister)
	r.Post("/register", c.Register)
	r.Get("/login", c.ShowLogin)
	r.Post("/login", c.Login)
	r.Get("/logout", c.Logout)
}

func (c *authController) ShowRegister(ctx *fiber.Ctx) error {
	if serverutils.CurrentUserId(ctx) != 0 {
		return ctx.Redirect("/")
	}
	return render(ctx, "register", nil)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	if serverutils.CurrentUserId(ctx) != 0 {
		return ctx.Redirect("/")
	}

	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	user, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailRegistered) {
			serverutils.SetFlash(ctx, "danger", err.Error())
			return ctx.Redirect("/login")
		}
		if errors.Is(err, serverutils.ErrValidation) {
			return render(ctx, "register", fiber.Map{
				"Error": err.Error(),
				"Email": req.Email,
			})
		}
		return err
	}

	if err := c.sessions.Issue(ctx, user.Id); err != nil {
		return err
	}

	serverutils.SetFlash(ctx, "success", "Account created! Logging you in...")
	return ctx.Redirect("/")
}

func (c *authController) ShowLogin(ctx *fiber.Ctx) error {
	if serverutils.CurrentUserId(ctx) != 0 {
		return ctx.Redirect("/")
	}
	return render(ctx, "login", nil)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	if serverutils.CurrentUserId(ctx) != 0 {
		return ctx.Redirect("/")
	}

	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	user, err := c.service.Authenticate(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, serverutils.ErrValidation) || errors.Is(err, serverutils.ErrUnauthenticated) {
			return render(ctx, "login", fiber.Map{
				"Error": err.Error(),
				"Email": req.Email,
			})
		}
		return err
	}

	if err := c.sessions.Issue(ctx, user.Id); err != nil {
		return err
	}

	serverutils.SetFlash(ctx, "success", "Welcome back, "+user.Email+"!")
	return ctx.Redirect("/")
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	c.sessions.Destroy(ctx)
	serverutils.SetFlash(ctx, "info", "You have been logged out.")
	return ctx.Redirect("/login")
}
