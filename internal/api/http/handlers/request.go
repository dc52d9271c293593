package handlers

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// validatable is implemented by every request DTO.
type validatable interface {
	Validate() error
}

// parseAndValidate decodes the JSON body into req and runs its validation
// rules. Field-level failures end up in the envelope's validationErrors map.
func parseAndValidate(c *fiber.Ctx, req validatable) error {
	if err := c.BodyParser(req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("validation failed", validationDetails(err))
	}
	return nil
}

func validationDetails(err error) map[string]any {
	var fieldErrors validation.Errors
	if ok := asValidationErrors(err, &fieldErrors); !ok {
		return map[string]any{"_": err.Error()}
	}
	details := make(map[string]any, len(fieldErrors))
	for field, fieldErr := range fieldErrors {
		details[field] = fieldErr.Error()
	}
	return details
}

func asValidationErrors(err error, target *validation.Errors) bool {
	ve, ok := err.(validation.Errors)
	if !ok {
		return false
	}
	*target = ve
	return true
}
