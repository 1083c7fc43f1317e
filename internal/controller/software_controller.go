package controller

import (
	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/pkg/serverutils"
	"prism-spend-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISoftwareController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type softwareController struct {
	softwareService service.ISoftwareService
}

func NewSoftwareController(softwareService service.ISoftwareService) ISoftwareController {
	return &softwareController{
		softwareService: softwareService,
	}
}

func (c *softwareController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/software/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":companyId", c.Create)
	h.Get(":companyId", c.List)
	h.Get(":companyId/:id", c.Show)
	h.Put(":companyId/:id", c.Update)
	h.Delete(":companyId/:id", c.Delete)
}

func (c *softwareController) Create(ctx *fiber.Ctx) error {
	companyId, err := pathId(ctx, "companyId")
	if err != nil {
		return err
	}

	var req dto.CreateSoftwareRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.softwareService.Create(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create software asset", res))
}

func (c *softwareController) Show(ctx *fiber.Ctx) error {
	companyId, err := pathId(ctx, "companyId")
	if err != nil {
		return err
	}
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.softwareService.Show(ctx.Context(), companyId, id)
	if err != nil {
		if err == service.ErrSoftwareNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Software asset not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show software asset", res))
}

func (c *softwareController) List(ctx *fiber.Ctx) error {
	companyId, err := pathId(ctx, "companyId")
	if err != nil {
		return err
	}

	res, err := c.softwareService.List(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list software assets", res))
}

func (c *softwareController) Update(ctx *fiber.Ctx) error {
	companyId, err := pathId(ctx, "companyId")
	if err != nil {
		return err
	}
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSoftwareRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.softwareService.Update(ctx.Context(), companyId, &req); err != nil {
		if err == service.ErrSoftwareNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Software asset not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update software asset", nil))
}

func (c *softwareController) Delete(ctx *fiber.Ctx) error {
	companyId, err := pathId(ctx, "companyId")
	if err != nil {
		return err
	}
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.softwareService.Delete(ctx.Context(), companyId, id); err != nil {
		if err == service.ErrSoftwareNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Software asset not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete software asset", nil))
}
