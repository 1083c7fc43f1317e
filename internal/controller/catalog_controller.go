package controller

import (
	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/pkg/serverutils"
	"prism-spend-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Enrich(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/enrich", c.Enrich)
}

func (c *catalogController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCatalogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create catalog product", res))
}

func (c *catalogController) Show(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.catalogService.Show(ctx.Context(), id)
	if err != nil {
		if err == service.ErrCatalogNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Catalog product not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show catalog product", res))
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	res, err := c.catalogService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list catalog products", res))
}

func (c *catalogController) Update(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCatalogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.catalogService.Update(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update catalog product", nil))
}

func (c *catalogController) Delete(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.catalogService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete catalog product", nil))
}

// Enrich runs the feature extraction model against the product and stores
// the result. The call is synchronous and can take a few seconds.
func (c *catalogController) Enrich(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.catalogService.Enrich(ctx.Context(), id)
	if err != nil {
		if err == service.ErrCatalogNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Catalog product not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success enrich catalog product", res))
}
