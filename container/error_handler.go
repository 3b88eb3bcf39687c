package container

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/jvdberg/go-api-base/apperror"
)

// newErrorHandler renders application errors as the JSON error envelope.
// Unexpected failures are logged and answered with a generic server error,
// never with their internal detail.
func newErrorHandler(log *slog.Logger) func(fiber.Ctx, error) error {
	return func(c fiber.Ctx, err error) error {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			if appErr.Code == apperror.CodeInternalError {
				log.Error("internal error", slog.String("error", appErr.Error()))
			}
			return c.Status(appErr.HTTPStatus).JSON(appErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code := apperror.CodeInternalError
			switch fiberErr.Code {
			case fiber.StatusNotFound:
				code = apperror.CodeNotFound
			case fiber.StatusUnauthorized:
				code = apperror.CodeUnauthorized
			}
			return c.Status(fiberErr.Code).JSON(apperror.Error{
				Code:    code,
				Message: fiberErr.Message,
			})
		}

		log.Error("unhandled error", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(apperror.Error{
			Code:    apperror.CodeInternalError,
			Message: "internal server error",
		})
	}
}
