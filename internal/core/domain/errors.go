package domain

import "errors"

// ErrValidation marks missing or malformed required input. Callers wrap it with
// the field-level message: fmt.Errorf("%w: address is required", ErrValidation).
var ErrValidation = errors.New("validation failed")

var ErrForbidden = errors.New("access forbidden")
