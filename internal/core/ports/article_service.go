package ports

import (
	"context"
	"time"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// PublishArticleInput carries a new article for the calling vet.
type PublishArticleInput struct {
	Title   string
	Content string
	VetID   string
}

// AddCommentInput carries a user's comment on an article.
type AddCommentInput struct {
	ArticleID string
	UserID    string
	Content   string
}

// CommentEntry is one comment enriched with its author for display.
type CommentEntry struct {
	ID        string
	Content   string
	CreatedAt time.Time
	User      UserSummary
}

// ArticleService defines article publishing and the comment thread beneath
// each article.
type ArticleService interface {
	Publish(ctx context.Context, input PublishArticleInput) (*domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	ListByVet(ctx context.Context, vetID string) ([]*domain.Article, error)
	// Delete removes an article; only the authoring vet may delete it.
	Delete(ctx context.Context, id, vetID string) error

	AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error)
	Comments(ctx context.Context, articleID string) ([]CommentEntry, error)
}
