package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

// ValidationError maps validator.v10 failures onto the standard validation
// response shape. Controllers call it after validate.Struct fails:
//
//	if err := helper.Validate.Struct(&req); err != nil {
//	    return helper.ValidationError(c, err)
//	}
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		f := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		fieldErrors[f] = append(fieldErrors[f], fe.Tag())
	}
	return JsonValidationError(c, fieldErrors)
}
