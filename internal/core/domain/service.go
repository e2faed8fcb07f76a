package domain

import (
	"errors"
	"time"
)

var ErrServiceNotFound = errors.New("service not found")

// Service is a care offering published by a vet. Cost is the amount the
// client forwards to the external payment page after booking.
type Service struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Cost        float64   `json:"cost" bson:"cost"`
	VetID       string    `json:"vet_id" bson:"vet_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
