package domain

import (
	"errors"
	"time"
)

// VaccinationStatus is the vaccination state shown on a pet record.
type VaccinationStatus string

const (
	VaccinationUpToDate VaccinationStatus = "Up to Date"
	VaccinationNone     VaccinationStatus = "Not Vaccinated"
)

// HealthStatus is the coarse health state of a pet.
type HealthStatus string

const (
	HealthHealthy HealthStatus = "Healthy"
	HealthSick    HealthStatus = "Sick"
)

var ErrPetNotFound = errors.New("pet not found")

// Pet is an owner-scoped record. Every field is required at registration;
// there are no partial pet documents.
type Pet struct {
	ID                  string            `json:"id" bson:"_id,omitempty"`
	Name                string            `json:"name" bson:"name"`
	Picture             string            `json:"picture" bson:"picture"`
	Species             string            `json:"species" bson:"species"`
	Breed               string            `json:"breed" bson:"breed"`
	Age                 int               `json:"age" bson:"age"`
	Sex                 string            `json:"sex" bson:"sex"`
	VaccinationStatus   VaccinationStatus `json:"vaccination_status" bson:"vaccination_status"`
	LastVaccinationDate time.Time         `json:"last_vaccination_date" bson:"last_vaccination_date"`
	HealthStatus        HealthStatus      `json:"health_status" bson:"health_status"`
	OwnerID             string            `json:"owner_id" bson:"owner_id"`
	CreatedAt           time.Time         `json:"created_at" bson:"created_at"`
}
