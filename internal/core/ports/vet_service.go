package ports

import (
	"context"
	"time"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// CreateVetInput carries the profile details a vet submits once per account.
type CreateVetInput struct {
	Name           string
	Location       string
	Specialization string
	Certifications []string
	UserID         string
}

// VetProfile is the public vet view with the owning account embedded.
type VetProfile struct {
	ID             string
	Name           string
	Location       string
	Specialization string
	Certifications []string
	CreatedAt      time.Time
	Owner          UserSummary
}

// EmergencyMatch is one vet whose location matched the caller's address.
type EmergencyMatch struct {
	Name           string
	Location       string
	Specialization string
}

// VetService defines provider-profile use cases, including the emergency
// location match.
type VetService interface {
	CreateProfile(ctx context.Context, input CreateVetInput) (*domain.Vet, error)
	GetVet(ctx context.Context, id string) (*VetProfile, error)
	// FindEmergencyVets returns every vet whose location textually matches the
	// address, in directory order. An empty slice is a valid outcome, not an
	// error; an empty address fails with domain.ErrValidation.
	FindEmergencyVets(ctx context.Context, address string) ([]EmergencyMatch, error)
}
