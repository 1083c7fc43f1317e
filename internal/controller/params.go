package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// pathId parses a UUID route parameter. A malformed value is rejected up
// front so it never reaches the service layer as the zero UUID.
func pathId(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name+" parameter")
	}
	return id, nil
}
