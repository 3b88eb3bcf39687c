package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/jvdberg/go-api-base/apperror"
)

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// decodeBody unmarshals the JSON request body into out and runs the struct
// validation tags. Failures surface as a validation error before any
// business logic runs.
func decodeBody(c fiber.Ctx, validate *validator.Validate, out any) error {
	if err := json.Unmarshal(c.Body(), out); err != nil {
		return apperror.Validation("invalid request body", nil, err)
	}

	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]FieldError, 0, len(validationErrors))
			for _, fieldError := range validationErrors {
				fields = append(fields, FieldError{
					Field: strings.ToLower(fieldError.Field()),
					Rule:  fieldError.Tag(),
					Param: fieldError.Param(),
				})
			}
			return apperror.Validation("request validation failed", fields, err)
		}
		return apperror.Validation("invalid request body", nil, err)
	}

	return nil
}
