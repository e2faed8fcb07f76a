package ports

import (
	"context"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// PetRepository defines persistence for pet records.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	FindByID(ctx context.Context, id string) (*domain.Pet, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error)
	Update(ctx context.Context, pet *domain.Pet) error
	Delete(ctx context.Context, id string) error
}
