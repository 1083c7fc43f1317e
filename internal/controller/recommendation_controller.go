package controller

import (
	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/pkg/serverutils"
	"prism-spend-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type recommendationController struct {
	recommendationService service.IRecommendationService
}

func NewRecommendationController(recommendationService service.IRecommendationService) IRecommendationController {
	return &recommendationController{
		recommendationService: recommendationService,
	}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/recommendation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":companyId", c.List)
	h.Patch(":id", c.UpdateStatus)
}

func (c *recommendationController) List(ctx *fiber.Ctx) error {
	companyId, err := pathId(ctx, "companyId")
	if err != nil {
		return err
	}

	res, err := c.recommendationService.List(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list recommendations", res))
}

func (c *recommendationController) UpdateStatus(ctx *fiber.Ctx) error {
	companyIdStr, _ := ctx.Locals("company_id").(string)
	companyId, _ := uuid.Parse(companyIdStr)

	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateRecommendationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.recommendationService.UpdateStatus(ctx.Context(), companyId, &req); err != nil {
		if err == service.ErrRecommendationNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Recommendation not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update recommendation", nil))
}
