package domain

import (
	"errors"
	"time"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// Appointment links a user, a vet, and one of the vet's services at a point
// in time. CreatedAt doubles as the appointment time; records are immutable
// once written (no reschedule or cancel).
//
// There is deliberately no slot inventory: two users booking the same service
// concurrently both succeed. Double-booking prevention is a documented
// limitation of the marketplace, not something this type defends against.
type Appointment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	VetID     string    `json:"vet_id" bson:"vet_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	ServiceID string    `json:"service_id" bson:"service_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
