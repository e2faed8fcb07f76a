package ports

import (
	"context"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// AddServiceInput carries a new catalog entry for the calling vet.
type AddServiceInput struct {
	Name        string
	Description string
	Cost        float64
	VetID       string
}

// VetSummary is the provider slice embedded in search hits.
type VetSummary struct {
	ID       string
	Name     string
	Location string
}

// ServiceMatch is one search hit with its provider embedded.
type ServiceMatch struct {
	ID          string
	Name        string
	Description string
	Cost        float64
	Vet         VetSummary
}

// CatalogService defines the care-service catalog use cases: vet-owned CRUD
// plus the public free-text search.
type CatalogService interface {
	Add(ctx context.Context, input AddServiceInput) (*domain.Service, error)
	ListByVet(ctx context.Context, vetID string) ([]*domain.Service, error)
	// Delete removes a service; only the owning vet may delete it.
	Delete(ctx context.Context, id, vetID string) error
	// Search matches text against service name and description. An empty
	// result set is a success; empty text fails with domain.ErrValidation.
	Search(ctx context.Context, text string) ([]ServiceMatch, error)
}
