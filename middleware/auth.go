package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/jvdberg/go-api-base/apperror"
	"github.com/jvdberg/go-api-base/auth"
)

// RequireSession wraps a handler with the bearer session guard. The wrapped
// handler only runs for a valid, unexpired session.
func RequireSession(authenticator auth.Authenticator, next fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		sessionId := BearerToken(c)
		if sessionId == "" {
			return apperror.Unauthorized("missing bearer credential")
		}

		validation, err := authenticator.Validate(c.Context(), sessionId)
		if err != nil {
			return apperror.Internal("session validation failed", err)
		}
		if !validation.Valid {
			return apperror.Unauthorized("invalid or expired session")
		}

		return next(c)
	}
}

// BearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. Returns "" when the header is absent or malformed.
func BearerToken(c fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
