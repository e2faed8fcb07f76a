package ports

import (
	"context"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// AppointmentRepository defines persistence for appointments. Records are
// append-only; there is no update or delete.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// FindByUser returns the user's appointments in insertion order.
	FindByUser(ctx context.Context, userID string) ([]*domain.Appointment, error)
}
