package metrics

import (
	"context"

	"github.com/pawcare/vetmarket/internal/core/ports"
)

// countingOTPSender decorates a delivery sender so every outcome lands in
// OTPDeliveriesTotal. The queue stays free of metrics wiring; the decorator is
// applied where the dispatcher is assembled.
type countingOTPSender struct {
	next ports.OTPSender
}

// InstrumentOTPSender wraps next with delivery counting.
func InstrumentOTPSender(next ports.OTPSender) ports.OTPSender {
	return &countingOTPSender{next: next}
}

func (s *countingOTPSender) Send(ctx context.Context, msg ports.OTPMessage) error {
	if err := s.next.Send(ctx, msg); err != nil {
		OTPDeliveriesTotal.WithLabelValues("error").Inc()
		return err
	}
	OTPDeliveriesTotal.WithLabelValues("ok").Inc()
	return nil
}
