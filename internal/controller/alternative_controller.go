package controller

import (
	"strconv"

	"prism-spend-be/internal/pkg/serverutils"
	"prism-spend-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAlternativeController interface {
	RegisterRoutes(r fiber.Router)
	Alternatives(ctx *fiber.Ctx) error
}

type alternativeController struct {
	alternativeService service.IAlternativeService
}

func NewAlternativeController(alternativeService service.IAlternativeService) IAlternativeController {
	return &alternativeController{
		alternativeService: alternativeService,
	}
}

func (c *alternativeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/alternative/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":softwareId", c.Alternatives)
}

func (c *alternativeController) Alternatives(ctx *fiber.Ctx) error {
	companyIdStr, _ := ctx.Locals("company_id").(string)
	companyId, _ := uuid.Parse(companyIdStr)

	softwareId, err := pathId(ctx, "softwareId")
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(ctx.Query("limit", "5"))

	res, err := c.alternativeService.Alternatives(ctx.Context(), companyId, softwareId, limit)
	if err != nil {
		if err == service.ErrNoCatalogLink {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, "Software asset has no catalog link"))
		}
		if err == service.ErrSoftwareNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Software asset not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list alternatives", res))
}
