package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// CatalogService implements the care-service catalog: vet-owned CRUD plus the
// public free-text search.
type CatalogService struct {
	services ports.ServiceRepository
	vets     ports.VetRepository
	logger   zerolog.Logger
}

func NewCatalogService(services ports.ServiceRepository, vets ports.VetRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{services: services, vets: vets, logger: logger}
}

func (s *CatalogService) Add(ctx context.Context, input ports.AddServiceInput) (*domain.Service, error) {
	if input.Name == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: name and description are required", domain.ErrValidation)
	}
	if input.Cost < 0 {
		return nil, fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}

	if _, err := s.vets.FindByID(ctx, input.VetID); err != nil {
		return nil, err
	}

	svc := &domain.Service{
		Name:        input.Name,
		Description: input.Description,
		Cost:        input.Cost,
		VetID:       input.VetID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.services.Create(ctx, svc)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("service_id", created.ID).Str("vet_id", input.VetID).Msg("service added")
	return created, nil
}

func (s *CatalogService) ListByVet(ctx context.Context, vetID string) ([]*domain.Service, error) {
	if vetID == "" {
		return nil, fmt.Errorf("%w: vet id is required", domain.ErrValidation)
	}
	return s.services.FindByVet(ctx, vetID)
}

func (s *CatalogService) Delete(ctx context.Context, id, vetID string) error {
	if id == "" {
		return fmt.Errorf("%w: service id is required", domain.ErrValidation)
	}

	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if svc.VetID != vetID {
		return domain.ErrForbidden
	}

	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("service_id", id).Str("vet_id", vetID).Msg("service deleted")
	return nil
}

// Search matches text against service name and description and embeds the
// owning vet in each hit. An empty result is a success; no ranking is applied.
func (s *CatalogService) Search(ctx context.Context, text string) ([]ports.ServiceMatch, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: search text is required", domain.ErrValidation)
	}

	found, err := s.services.Search(ctx, text)
	if err != nil {
		return nil, err
	}

	matches := make([]ports.ServiceMatch, 0, len(found))
	for _, svc := range found {
		match := ports.ServiceMatch{
			ID:          svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			Cost:        svc.Cost,
			Vet:         ports.VetSummary{ID: svc.VetID},
		}
		if vet, err := s.vets.FindByID(ctx, svc.VetID); err == nil {
			match.Vet.Name = vet.Name
			match.Vet.Location = vet.Location
		}
		matches = append(matches, match)
	}

	return matches, nil
}
