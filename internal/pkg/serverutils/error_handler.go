package serverutils

import (
	"errors"

	"prism-spend-be/pkg/redundancy"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrorHandlerMiddleware maps domain errors onto HTTP status codes so the
// controllers can just return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := statusFor(err)
		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}

func statusFor(err error) int {
	var validationErr *ValidationError
	switch {
	case errors.Is(err, redundancy.ErrAnalysisConflict):
		return fiber.StatusConflict
	case errors.Is(err, redundancy.ErrInsufficientData):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, redundancy.ErrRunNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
