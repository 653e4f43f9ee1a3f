package controller

import (
	"errors"
	"strconv"

	"smartnotes-be/internal/dto"
	"smartnotes-be/internal/pkg/serverutils"
	"smartnotes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	New(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Edit(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/", serverutils.RequireSession())
	h.Get("/", c.Index)
	// "new" is registered before ":id" so it wins route matching
	h.Get("/notes/new", c.New)
	h.Post("/notes/new", c.Create)
	h.Get("/notes/:id", c.Show)
	h.Get("/notes/:id/edit", c.Edit)
	h.Post("/notes/:id/edit", c.Update)
	h.Post("/notes/:id/delete", c.Delete)
}

// handleNoteError collapses absent and not-owned into the same redirect on
// the web surface; only the flash message differs. The API keeps 404 vs 403.
func (c *noteController) handleNoteError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, serverutils.ErrNotFound):
		serverutils.SetFlash(ctx, "danger", "Note not found.")
	case errors.Is(err, serverutils.ErrForbidden):
		serverutils.SetFlash(ctx, "danger", "Access denied.")
	default:
		return err
	}
	return ctx.Redirect("/")
}

func noteIdParam(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, serverutils.NotFoundError("Note not found")
	}
	return uint(id), nil
}

func (c *noteController) Index(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	notes, err := c.noteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return render(ctx, "index", fiber.Map{"Notes": notes})
}

func (c *noteController) New(ctx *fiber.Ctx) error {
	return render(ctx, "create", nil)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if _, err := c.noteService.Create(ctx.Context(), userId, &req); err != nil {
		if errors.Is(err, serverutils.ErrValidation) {
			return render(ctx, "create", fiber.Map{
				"Error":   "Title is required.",
				"Content": req.Content,
			})
		}
		return err
	}

	serverutils.SetFlash(ctx, "success", "Note created successfully!")
	return ctx.Redirect("/")
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return c.handleNoteError(ctx, err)
	}

	note, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return c.handleNoteError(ctx, err)
	}

	return render(ctx, "view", fiber.Map{"Note": note})
}

func (c *noteController) Edit(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return c.handleNoteError(ctx, err)
	}

	note, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return c.handleNoteError(ctx, err)
	}

	return render(ctx, "edit", fiber.Map{"Note": note})
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return c.handleNoteError(ctx, err)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := c.noteService.Update(ctx.Context(), userId, &req); err != nil {
		if errors.Is(err, serverutils.ErrValidation) {
			note, showErr := c.noteService.Show(ctx.Context(), userId, id)
			if showErr != nil {
				return c.handleNoteError(ctx, showErr)
			}
			return render(ctx, "edit", fiber.Map{
				"Error": "Title is required.",
				"Note":  note,
			})
		}
		return c.handleNoteError(ctx, err)
	}

	serverutils.SetFlash(ctx, "success", "Note updated successfully!")
	return ctx.Redirect("/notes/" + strconv.FormatUint(uint64(id), 10))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return c.handleNoteError(ctx, err)
	}

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return c.handleNoteError(ctx, err)
	}

	serverutils.SetFlash(ctx, "warning", "Note deleted successfully!")
	return ctx.Redirect("/")
}
