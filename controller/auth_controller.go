package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/jvdberg/go-api-base/apperror"
	"github.com/jvdberg/go-api-base/auth"
	"github.com/jvdberg/go-api-base/middleware"
	"github.com/jvdberg/go-api-base/model"
)

type AuthController interface {
	Login(c fiber.Ctx) error
	Validate(c fiber.Ctx) error
	Logout(c fiber.Ctx) error
}

type authController struct {
	authenticator auth.Authenticator
	validate      *validator.Validate
}

func NewAuthController(authenticator auth.Authenticator, validate *validator.Validate) AuthController {
	return &authController{
		authenticator: authenticator,
		validate:      validate,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type validateRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
}

type validateResponse struct {
	Valid bool              `json:"valid"`
	User  *model.PublicUser `json:"user,omitempty"`
}

func (controller *authController) Login(c fiber.Ctx) error {
	var request loginRequest
	if err := decodeBody(c, controller.validate, &request); err != nil {
		return err
	}

	session, user, err := controller.authenticator.Login(c.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Same response for unknown email and wrong password
			return apperror.Unauthorized("invalid email or password")
		}
		return apperror.Internal("login failed", err)
	}

	return c.JSON(fiber.Map{
		"sessionId": session.Id,
		"user":      user.Public(),
	})
}

func (controller *authController) Validate(c fiber.Ctx) error {
	var request validateRequest
	if err := decodeBody(c, controller.validate, &request); err != nil {
		return err
	}

	validation, err := controller.authenticator.Validate(c.Context(), request.SessionId)
	if err != nil {
		return apperror.Internal("session validation failed", err)
	}

	response := validateResponse{Valid: validation.Valid}
	if validation.Valid {
		publicUser := validation.User.Public()
		response.User = &publicUser
	}

	return c.JSON(response)
}

func (controller *authController) Logout(c fiber.Ctx) error {
	sessionId := middleware.BearerToken(c)
	if sessionId == "" {
		return apperror.Unauthorized("missing bearer credential")
	}

	if err := controller.authenticator.Logout(c.Context(), sessionId); err != nil {
		return apperror.Internal("logout failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
