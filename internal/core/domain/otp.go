package domain

import "errors"

var ErrOTPInvalid = errors.New("invalid otp")
var ErrOTPExpired = errors.New("otp expired or not requested")
var ErrOTPNotVerified = errors.New("otp not verified")
