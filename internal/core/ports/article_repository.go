package ports

import (
	"context"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// ArticleRepository defines persistence for vet-authored articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	FindByVet(ctx context.Context, vetID string) ([]*domain.Article, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines persistence for article comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByArticle(ctx context.Context, articleID string) ([]*domain.Comment, error)
}
