package serverutils

import (
	"errors"

	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// NewErrorHandler maps service errors to HTTP responses. AppErrors keep
// their status and field detail; fiber errors keep their code; anything
// else is logged with a request id and returned as a generic 500.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if appErr, ok := apperror.As(err); ok {
			return ctx.Status(appErr.Status).JSON(fiber.Map{
				"success": false,
				"message": appErr.Message,
				"errors":  appErr.Fields,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		requestId := uuid.NewString()
		log.Error("http", "unhandled error", map[string]interface{}{
			"request_id": requestId,
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"error":      err.Error(),
		})

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":    false,
			"message":    "Internal server error",
			"request_id": requestId,
		})
	}
}
