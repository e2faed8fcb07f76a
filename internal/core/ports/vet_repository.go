package ports

import (
	"context"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// VetRepository defines persistence for vet profiles.
type VetRepository interface {
	Create(ctx context.Context, vet *domain.Vet) (*domain.Vet, error)
	FindByID(ctx context.Context, id string) (*domain.Vet, error)
	// FindByUserID returns the profile owned by the given account, or
	// domain.ErrVetNotFound when the user has none.
	FindByUserID(ctx context.Context, userID string) (*domain.Vet, error)
	// All returns the full vet directory. The emergency lookup is a linear
	// filter over this set; acceptable at directory scale.
	All(ctx context.Context) ([]*domain.Vet, error)
}
