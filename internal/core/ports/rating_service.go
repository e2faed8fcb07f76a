package ports

import (
	"context"
	"time"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// RateVetInput carries a user's score and review for a vet.
type RateVetInput struct {
	VetID  string
	UserID string
	Rating int // 1..5
	Review string
}

// RatingEntry is one rating enriched with its author for display.
type RatingEntry struct {
	Rating    int
	Review    string
	CreatedAt time.Time
	User      UserSummary
}

// RatingService defines rating submission and per-vet listing.
type RatingService interface {
	Rate(ctx context.Context, input RateVetInput) (*domain.Rating, error)
	ListByVet(ctx context.Context, vetID string) ([]RatingEntry, error)
}
