package api

import (
	"errors"

	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/logger"

	"github.com/gofiber/fiber/v2"
)

// writeError maps a classified error to its HTTP status and error body.
func writeError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(domain.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  vErr.Fields,
		})
	}

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case domain.CodeNotFound:
			return c.Status(fiber.StatusNotFound).JSON(domain.ErrorResponse{Message: appErr.Message})
		case domain.CodeUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(domain.ErrorResponse{Message: appErr.Message})
		}
	}

	logger.FromFiber(c).Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(domain.ErrorResponse{
		Success: false,
		Message: "Internal server error",
	})
}
