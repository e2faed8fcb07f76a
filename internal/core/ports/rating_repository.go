package ports

import (
	"context"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// RatingRepository defines persistence for vet ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	FindByVet(ctx context.Context, vetID string) ([]*domain.Rating, error)
}
