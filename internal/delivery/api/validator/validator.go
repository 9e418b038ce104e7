// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates request structs using `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports json field names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Describe turns a validation error into a short human readable reason.
func Describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	var missing, other []string
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "max":
			other = append(other, fe.Field()+" exceeds the limit of "+fe.Param()+" items")
		default:
			other = append(other, fe.Field()+" failed "+fe.Tag()+" validation")
		}
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(missing, ", "))
	}
	parts = append(parts, other...)

	return strings.Join(parts, "; ")
}
