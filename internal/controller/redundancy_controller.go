package controller

import (
	"prism-spend-be/internal/pkg/serverutils"
	"prism-spend-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRedundancyController interface {
	RegisterRoutes(r fiber.Router)
	Trigger(ctx *fiber.Ctx) error
	Progress(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Result(ctx *fiber.Ctx) error
}

type redundancyController struct {
	redundancyService service.IRedundancyService
}

func NewRedundancyController(redundancyService service.IRedundancyService) IRedundancyController {
	return &redundancyController{
		redundancyService: redundancyService,
	}
}

func (c *redundancyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/redundancy/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":companyId/analyze", c.Trigger)
	h.Get(":companyId/progress", c.Progress)
	h.Delete(":companyId/progress", c.Cancel)
	h.Get(":companyId/result", c.Result)
}

func (c *redundancyController) Trigger(ctx *fiber.Ctx) error {
	companyId, err := pathId(ctx, "companyId")
	if err != nil {
		return err
	}

	res, err := c.redundancyService.Trigger(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Analysis started", res))
}

func (c *redundancyController) Progress(ctx *fiber.Ctx) error {
	companyId, err := pathId(ctx, "companyId")
	if err != nil {
		return err
	}

	res, err := c.redundancyService.GetProgress(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get analysis progress", res))
}

func (c *redundancyController) Cancel(ctx *fiber.Ctx) error {
	companyId, err := pathId(ctx, "companyId")
	if err != nil {
		return err
	}

	res, err := c.redundancyService.Cancel(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Cancellation requested", res))
}

func (c *redundancyController) Result(ctx *fiber.Ctx) error {
	companyId, err := pathId(ctx, "companyId")
	if err != nil {
		return err
	}

	res, err := c.redundancyService.GetResult(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get analysis result", res))
}
