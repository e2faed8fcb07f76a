package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator plugs go-playground/validator into echo's Validate hook and
// flattens its per-field errors into one client-facing message.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator builds the validator assigned to echo.Echo.Validator.
func NewValidator() *requestValidator {
	return &requestValidator{v: validator.New()}
}

func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}

	parts := make([]string, len(fields))
	for i, fe := range fields {
		parts[i] = describe(fe)
	}
	return errors.New(strings.Join(parts, "; "))
}

// describe turns a failed rule into the message clients see.
func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, oneofOptions(fe.Param()))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// oneofOptions renders a oneof parameter list for humans. Multi-word options,
// like the pet health and vaccination states, arrive single-quoted and
// space-separated; plain options are just space-separated.
func oneofOptions(param string) string {
	if strings.Contains(param, "'") {
		opts := strings.Split(param, "' '")
		for i := range opts {
			opts[i] = strings.Trim(opts[i], "'")
		}
		return strings.Join(opts, ", ")
	}
	return strings.ReplaceAll(param, " ", ", ")
}
