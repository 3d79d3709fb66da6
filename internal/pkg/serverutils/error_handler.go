package serverutils

import (
	"errors"

	"elibrary-be/internal/pkg/apperror"
	"elibrary-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler translates handler errors into the response envelope.
// Anything that is neither an AppError nor a fiber error is a 500.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if appErr, ok := apperror.As(err); ok {
			if appErr.Category == apperror.CategoryInternal {
				logInternal(log, ctx, appErr)
			}
			return ctx.Status(appErr.HTTPStatus()).JSON(Response{
				Code:    appErr.Code,
				Message: appErr.Message,
				Errors:  appErr.Fields,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(Response{
				Code:    "Common.Error0000",
				Message: fiberErr.Message,
			})
		}

		internal := apperror.Internal(err)
		logInternal(log, ctx, internal)
		return ctx.Status(internal.HTTPStatus()).JSON(Response{
			Code:    internal.Code,
			Message: internal.Message,
		})
	}
}

func logInternal(log logger.ILogger, ctx *fiber.Ctx, err error) {
	log.Error("HTTP", "Unhandled error", map[string]interface{}{
		"method": ctx.Method(),
		"path":   ctx.Path(),
		"error":  err,
	})
}
