package controller

import (
	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/serverutils"
	"notekeep-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILabelController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type labelController struct {
	service service.ILabelService
}

func NewLabelController(service service.ILabelService) ILabelController {
	return &labelController{service: service}
}

func (c *labelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/labels")
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *labelController) Index(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all labels", res))
}

func (c *labelController) Show(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show label", res))
}

func (c *labelController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateLabelRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create label", res))
}

func (c *labelController) Update(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateLabelRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success update label", res))
}

func (c *labelController) Delete(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
