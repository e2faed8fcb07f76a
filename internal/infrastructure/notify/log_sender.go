// Package notify contains delivery transports for password-reset codes.
// Actual delivery (mail, SMS) is an external collaborator; the default
// implementation records the dispatch in the structured log so deployments
// without a mail gateway still exercise the full reset flow.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pawcare/vetmarket/internal/core/ports"
)

// LogSender writes reset codes to the log instead of delivering them.
type LogSender struct {
	logger zerolog.Logger
}

func NewLogSender(logger zerolog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg ports.OTPMessage) error {
	s.logger.Info().Str("email", msg.Email).Msg("password reset code ready for delivery")
	return nil
}
