package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// VetService implements provider-profile use cases and the emergency
// location match.
type VetService struct {
	vets   ports.VetRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewVetService(vets ports.VetRepository, users ports.UserRepository, logger zerolog.Logger) *VetService {
	return &VetService{vets: vets, users: users, logger: logger}
}

func (s *VetService) CreateProfile(ctx context.Context, input ports.CreateVetInput) (*domain.Vet, error) {
	if input.Name == "" || input.Location == "" || input.Specialization == "" {
		return nil, fmt.Errorf("%w: name, location and specialization are required", domain.ErrValidation)
	}
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	// One profile per account.
	if _, err := s.vets.FindByUserID(ctx, input.UserID); err == nil {
		return nil, domain.ErrVetProfileExists
	} else if !errors.Is(err, domain.ErrVetNotFound) {
		return nil, err
	}

	vet := &domain.Vet{
		Name:           input.Name,
		Location:       input.Location,
		Specialization: input.Specialization,
		Certifications: input.Certifications,
		UserID:         input.UserID,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.vets.Create(ctx, vet)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("vet_id", created.ID).Str("user_id", input.UserID).Msg("vet profile created")
	return created, nil
}

func (s *VetService) GetVet(ctx context.Context, id string) (*ports.VetProfile, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: vet id is required", domain.ErrValidation)
	}

	vet, err := s.vets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &ports.VetProfile{
		ID:             vet.ID,
		Name:           vet.Name,
		Location:       vet.Location,
		Specialization: vet.Specialization,
		Certifications: vet.Certifications,
		CreatedAt:      vet.CreatedAt,
	}

	owner, err := s.users.FindByID(ctx, vet.UserID)
	if err == nil {
		profile.Owner = ports.UserSummary{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	return profile, nil
}

// FindEmergencyVets filters the directory for vets whose location textually
// matches the address. O(number of vets); there is no geospatial index, and
// the first match in directory order is what callers present.
func (s *VetService) FindEmergencyVets(ctx context.Context, address string) ([]ports.EmergencyMatch, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	}

	vets, err := s.vets.All(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]ports.EmergencyMatch, 0)
	for _, vet := range vets {
		if locationMatches(address, vet.Location) {
			matches = append(matches, ports.EmergencyMatch{
				Name:           vet.Name,
				Location:       vet.Location,
				Specialization: vet.Specialization,
			})
		}
	}

	s.logger.Info().Str("address", address).Int("matches", len(matches)).Msg("emergency vet lookup")

	return matches, nil
}

// locationMatches reports whether a vet's free-text location applies to the
// given address. Both fields are unstructured, so containment is checked in
// both directions, case-insensitively: "Dhaka" matches an address of
// "House 7, Dhanmondi, Dhaka" and vice versa.
func locationMatches(address, location string) bool {
	addr := strings.ToLower(strings.TrimSpace(address))
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return false
	}
	return strings.Contains(addr, loc) || strings.Contains(loc, addr)
}
