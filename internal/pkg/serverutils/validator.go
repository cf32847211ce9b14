package serverutils

import (
	"strings"

	"ai-companion-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks struct tags and converts failures into the
// InvalidArgument taxonomy so the error middleware maps them to 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fields []string
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fields = append(fields, fieldErr.Field())
		}
		return apperror.InvalidArgument("invalid request fields: %s", strings.Join(fields, ", "))
	}
	return nil
}
