package ports

import (
	"context"
	"time"
)

// BookAppointmentInput identifies the three parties of a booking. UserID is
// always the authenticated caller, never taken from the request body.
type BookAppointmentInput struct {
	VetID     string
	UserID    string
	ServiceID string
}

// BookingResult is returned after a successful booking. Cost lets the caller
// proceed to the external payment page.
type BookingResult struct {
	AppointmentID string
	Cost          float64
	CreatedAt     time.Time
}

// VetRef is the vet slice embedded in a history entry.
type VetRef struct {
	ID   string
	Name string
}

// ServiceRef is the service slice embedded in a history entry.
type ServiceRef struct {
	ID   string
	Name string
	Cost float64
}

// AppointmentEntry is one row of a user's appointment history, enriched with
// the referenced vet and service for display.
type AppointmentEntry struct {
	ID        string
	Vet       VetRef
	Service   ServiceRef
	CreatedAt time.Time
}

// AppointmentService defines the booking workflow and the history query.
type AppointmentService interface {
	// Book validates that the vet, user, and service exist and that the
	// service belongs to the vet, then writes exactly one appointment.
	// Check-then-write, not transactional: a service deleted between the
	// validation read and the insert is a known race.
	Book(ctx context.Context, input BookAppointmentInput) (*BookingResult, error)
	// History returns the user's enriched appointments. A user with no
	// appointments gets an empty slice, never an error.
	History(ctx context.Context, userID string) ([]AppointmentEntry, error)
}
