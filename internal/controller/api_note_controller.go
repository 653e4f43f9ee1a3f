package controller

import (
	"smartnotes-be/internal/dto"
	"smartnotes-be/internal/pkg/serverutils"
	"smartnotes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IApiNoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type apiNoteController struct {
	noteService service.INoteService
}

func NewApiNoteController(noteService service.INoteService) IApiNoteController {
	return &apiNoteController{
		noteService: noteService,
	}
}

func (c *apiNoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/notes")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *apiNoteController) List(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	notes, err := c.noteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(notes)
}

func (c *apiNoteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationError("Invalid request body")
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *apiNoteController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	note, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NoteDetailResponse{
		Id:      note.Id,
		Title:   note.Title,
		Content: note.Content,
	})
}

func (c *apiNoteController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationError("Invalid request body")
	}
	req.Id = id

	if err := c.noteService.Update(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"message": "Updated"})
}

func (c *apiNoteController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"message": "Deleted"})
}
