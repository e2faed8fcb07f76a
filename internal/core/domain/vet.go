package domain

import (
	"errors"
	"time"
)

var ErrVetNotFound = errors.New("vet not found")
var ErrVetProfileExists = errors.New("vet profile already exists")

// Vet is the provider profile owned by a user with the vet role.
// Location is free text ("Dhanmondi, Dhaka") and is what the emergency
// lookup matches against; there are no coordinates anywhere in the model.
type Vet struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Location       string    `json:"location" bson:"location"`
	Specialization string    `json:"specialization" bson:"specialization"`
	Certifications []string  `json:"certifications" bson:"certifications"`
	UserID         string    `json:"user_id" bson:"user_id"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
