package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// RatingService implements rating submission and per-vet listing.
type RatingService struct {
	ratings ports.RatingRepository
	vets    ports.VetRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewRatingService(
	ratings ports.RatingRepository,
	vets ports.VetRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *RatingService {
	return &RatingService{ratings: ratings, vets: vets, users: users, logger: logger}
}

func (s *RatingService) Rate(ctx context.Context, input ports.RateVetInput) (*domain.Rating, error) {
	if input.VetID == "" || input.UserID == "" {
		return nil, fmt.Errorf("%w: vet id and user id are required", domain.ErrValidation)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	if _, err := s.vets.FindByID(ctx, input.VetID); err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		VetID:     input.VetID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Review:    input.Review,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.ratings.Create(ctx, rating)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("vet_id", input.VetID).Int("rating", input.Rating).Msg("rating submitted")
	return created, nil
}

func (s *RatingService) ListByVet(ctx context.Context, vetID string) ([]ports.RatingEntry, error) {
	if vetID == "" {
		return nil, fmt.Errorf("%w: vet id is required", domain.ErrValidation)
	}

	ratings, err := s.ratings.FindByVet(ctx, vetID)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.RatingEntry, 0, len(ratings))
	for _, rating := range ratings {
		entry := ports.RatingEntry{
			Rating:    rating.Rating,
			Review:    rating.Review,
			CreatedAt: rating.CreatedAt,
		}
		if user, err := s.users.FindByID(ctx, rating.UserID); err == nil {
			entry.User = ports.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
