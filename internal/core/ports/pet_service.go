package ports

import (
	"context"
	"time"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// RegisterPetInput carries a complete pet record; every field is required.
type RegisterPetInput struct {
	Name                string
	Picture             string
	Species             string
	Breed               string
	Age                 int
	Sex                 string
	VaccinationStatus   string
	LastVaccinationDate time.Time
	HealthStatus        string
	OwnerID             string
}

// UpdatePetInput is a full replacement of a pet record. OwnerID identifies
// the caller; only the owner may mutate the record.
type UpdatePetInput struct {
	ID string
	RegisterPetInput
}

// PetService defines owner-scoped pet CRUD.
type PetService interface {
	Register(ctx context.Context, input RegisterPetInput) (*domain.Pet, error)
	Get(ctx context.Context, id string) (*domain.Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error)
	Update(ctx context.Context, input UpdatePetInput) (*domain.Pet, error)
	Delete(ctx context.Context, id, ownerID string) error
}
