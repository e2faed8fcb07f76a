package ports

import (
	"context"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdatePassword replaces the stored hash for the account with the given email.
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
