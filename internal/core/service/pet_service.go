package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// PetService implements owner-scoped pet CRUD.
type PetService struct {
	pets   ports.PetRepository
	logger zerolog.Logger
}

func NewPetService(pets ports.PetRepository, logger zerolog.Logger) *PetService {
	return &PetService{pets: pets, logger: logger}
}

func (s *PetService) Register(ctx context.Context, input ports.RegisterPetInput) (*domain.Pet, error) {
	if err := validatePetInput(input); err != nil {
		return nil, err
	}

	pet := &domain.Pet{
		Name:                input.Name,
		Picture:             input.Picture,
		Species:             input.Species,
		Breed:               input.Breed,
		Age:                 input.Age,
		Sex:                 input.Sex,
		VaccinationStatus:   domain.VaccinationStatus(input.VaccinationStatus),
		LastVaccinationDate: input.LastVaccinationDate,
		HealthStatus:        domain.HealthStatus(input.HealthStatus),
		OwnerID:             input.OwnerID,
		CreatedAt:           time.Now().UTC(),
	}

	created, err := s.pets.Create(ctx, pet)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("pet_id", created.ID).Str("owner_id", input.OwnerID).Msg("pet registered")
	return created, nil
}

func (s *PetService) Get(ctx context.Context, id string) (*domain.Pet, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: pet id is required", domain.ErrValidation)
	}
	return s.pets.FindByID(ctx, id)
}

func (s *PetService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", domain.ErrValidation)
	}
	return s.pets.FindByOwner(ctx, ownerID)
}

func (s *PetService) Update(ctx context.Context, input ports.UpdatePetInput) (*domain.Pet, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: pet id is required", domain.ErrValidation)
	}
	if err := validatePetInput(input.RegisterPetInput); err != nil {
		return nil, err
	}

	existing, err := s.pets.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != input.OwnerID {
		return nil, domain.ErrForbidden
	}

	pet := &domain.Pet{
		ID:                  existing.ID,
		Name:                input.Name,
		Picture:             input.Picture,
		Species:             input.Species,
		Breed:               input.Breed,
		Age:                 input.Age,
		Sex:                 input.Sex,
		VaccinationStatus:   domain.VaccinationStatus(input.VaccinationStatus),
		LastVaccinationDate: input.LastVaccinationDate,
		HealthStatus:        domain.HealthStatus(input.HealthStatus),
		OwnerID:             existing.OwnerID,
		CreatedAt:           existing.CreatedAt,
	}

	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *PetService) Delete(ctx context.Context, id, ownerID string) error {
	if id == "" {
		return fmt.Errorf("%w: pet id is required", domain.ErrValidation)
	}

	pet, err := s.pets.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if pet.OwnerID != ownerID {
		return domain.ErrForbidden
	}

	if err := s.pets.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("pet_id", id).Str("owner_id", ownerID).Msg("pet deleted")
	return nil
}

// validatePetInput enforces the no-partial-records invariant: every field of
// a pet is required, with age non-negative and the two statuses drawn from
// their enums.
func validatePetInput(input ports.RegisterPetInput) error {
	switch {
	case input.Name == "", input.Picture == "", input.Species == "",
		input.Breed == "", input.Sex == "", input.OwnerID == "",
		input.LastVaccinationDate.IsZero():
		return fmt.Errorf("%w: all pet fields are required", domain.ErrValidation)
	case input.Age < 0:
		return fmt.Errorf("%w: age must not be negative", domain.ErrValidation)
	}

	vs := domain.VaccinationStatus(input.VaccinationStatus)
	if vs != domain.VaccinationUpToDate && vs != domain.VaccinationNone {
		return fmt.Errorf("%w: invalid vaccination status", domain.ErrValidation)
	}
	hs := domain.HealthStatus(input.HealthStatus)
	if hs != domain.HealthHealthy && hs != domain.HealthSick {
		return fmt.Errorf("%w: invalid health status", domain.ErrValidation)
	}
	return nil
}
