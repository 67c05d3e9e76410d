package controller

import (
	"context"
	"strconv"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/serverutils"
	"notekeep-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Move(ctx *fiber.Ctx) error
	Duplicate(ctx *fiber.Ctx) error
	TogglePin(ctx *fiber.Ctx) error
	ToggleArchive(ctx *fiber.Ctx) error
	Trash(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	Drop(ctx *fiber.Ctx) error
	GetLabels(ctx *fiber.Ctx) error
	AddLabel(ctx *fiber.Ctx) error
	RemoveLabel(ctx *fiber.Ctx) error
}

type noteController struct {
	service service.INoteService
}

func NewNoteController(service service.INoteService) INoteController {
	return &noteController{service: service}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Post("/drop", c.Drop)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Put("/:id/move", c.Move)
	h.Post("/:id/duplicate", c.Duplicate)
	h.Put("/:id/pin", c.TogglePin)
	h.Put("/:id/archive", c.ToggleArchive)
	h.Put("/:id/trash", c.Trash)
	h.Put("/:id/restore", c.Restore)
	h.Get("/:noteId/labels", c.GetLabels)
	h.Post("/:noteId/labels/:labelId", c.AddLabel)
	h.Delete("/:noteId/labels/:labelId", c.RemoveLabel)
}

// Index serves both shapes of GET /api/notes: without query params it
// returns the raw collection; with params it runs the filtered view and
// groups pinned notes separately.
func (c *noteController) Index(ctx *fiber.Ctx) error {
	if len(ctx.Queries()) == 0 {
		res, err := c.service.GetAll(ctx.Context())
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.SuccessResponse("Success get all notes", res))
	}

	query, err := parseListQuery(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.List(ctx.Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get notes", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewBadRequest("Invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *noteController) Move(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.MoveNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewBadRequest("Invalid request body")
	}
	req.Id = id

	res, err := c.service.Move(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success move note", res))
}

func (c *noteController) Duplicate(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Duplicate(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success duplicate note", res))
}

func (c *noteController) TogglePin(ctx *fiber.Ctx) error {
	return c.flagEndpoint(ctx, c.service.TogglePin, "Success toggle pin")
}

func (c *noteController) ToggleArchive(ctx *fiber.Ctx) error {
	return c.flagEndpoint(ctx, c.service.ToggleArchive, "Success toggle archive")
}

func (c *noteController) Trash(ctx *fiber.Ctx) error {
	return c.flagEndpoint(ctx, c.service.Trash, "Success trash note")
}

func (c *noteController) Restore(ctx *fiber.Ctx) error {
	return c.flagEndpoint(ctx, c.service.Restore, "Success restore note")
}

func (c *noteController) flagEndpoint(ctx *fiber.Ctx, op func(context.Context, int) (*dto.NoteResponse, error), message string) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	res, err := op(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *noteController) Drop(ctx *fiber.Ctx) error {
	var req dto.DropRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Drop(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.JSON(serverutils.SuccessResponse[any]("Drop ignored", nil))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success drop note", res))
}

func (c *noteController) GetLabels(ctx *fiber.Ctx) error {
	noteId, err := paramInt(ctx, "noteId")
	if err != nil {
		return err
	}

	res, err := c.service.GetLabels(ctx.Context(), noteId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get note labels", res))
}

func (c *noteController) AddLabel(ctx *fiber.Ctx) error {
	noteId, err := paramInt(ctx, "noteId")
	if err != nil {
		return err
	}
	labelId, err := paramInt(ctx, "labelId")
	if err != nil {
		return err
	}

	if err := c.service.AddLabel(ctx.Context(), noteId, labelId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *noteController) RemoveLabel(ctx *fiber.Ctx) error {
	noteId, err := paramInt(ctx, "noteId")
	if err != nil {
		return err
	}
	labelId, err := paramInt(ctx, "labelId")
	if err != nil {
		return err
	}

	if err := c.service.RemoveLabel(ctx.Context(), noteId, labelId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func parseListQuery(ctx *fiber.Ctx) (*dto.ListNotesQuery, error) {
	query := &dto.ListNotesQuery{
		Search:   ctx.Query("q"),
		Archived: ctx.QueryBool("archived"),
	}
	if raw := ctx.Query("folder_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperror.NewBadRequest("folder_id must be an integer")
		}
		query.FolderId = &id
	}
	if raw := ctx.Query("label_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperror.NewBadRequest("label_id must be an integer")
		}
		query.LabelId = &id
	}
	return query, nil
}

func paramInt(ctx *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Params(name))
	if err != nil {
		return 0, apperror.NewBadRequest(name + " must be an integer")
	}
	return id, nil
}
