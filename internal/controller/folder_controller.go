package controller

import (
	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/serverutils"
	"notekeep-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFolderController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Tree(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type folderController struct {
	service service.IFolderService
}

func NewFolderController(service service.IFolderService) IFolderController {
	return &folderController{service: service}
}

func (c *folderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/folders")
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Get("/tree", c.Tree)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *folderController) Index(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all folders", res))
}

func (c *folderController) Tree(ctx *fiber.Ctx) error {
	res, err := c.service.GetTree(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get folder tree", res))
}

func (c *folderController) Show(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show folder", res))
}

func (c *folderController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFolderRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create folder", res))
}

func (c *folderController) Update(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateFolderRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success update folder", res))
}

func (c *folderController) Delete(ctx *fiber.Ctx) error {
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
