package ports

import (
	"context"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// ServiceRepository defines persistence for the care-service catalog.
//
// Search is deliberately part of this interface so the current substring
// filter can be swapped for an indexed implementation without touching
// callers.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	FindByVet(ctx context.Context, vetID string) ([]*domain.Service, error)
	// Search returns services whose name or description contains text,
	// case-insensitively. No ranking; order is unspecified.
	Search(ctx context.Context, text string) ([]*domain.Service, error)
	Delete(ctx context.Context, id string) error
}
