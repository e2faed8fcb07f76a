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

// ArticleService implements article publishing and comment threads.
type ArticleService struct {
	articles ports.ArticleRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewArticleService(
	articles ports.ArticleRepository,
	comments ports.CommentRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *ArticleService {
	return &ArticleService{articles: articles, comments: comments, users: users, logger: logger}
}

func (s *ArticleService) Publish(ctx context.Context, input ports.PublishArticleInput) (*domain.Article, error) {
	if input.Title == "" || input.Content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrValidation)
	}
	if input.VetID == "" {
		return nil, fmt.Errorf("%w: vet id is required", domain.ErrValidation)
	}

	article := &domain.Article{
		Title:     input.Title,
		Content:   input.Content,
		VetID:     input.VetID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.articles.Create(ctx, article)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("article_id", created.ID).Str("vet_id", input.VetID).Msg("article published")
	return created, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: article id is required", domain.ErrValidation)
	}
	return s.articles.FindByID(ctx, id)
}

func (s *ArticleService) ListByVet(ctx context.Context, vetID string) ([]*domain.Article, error) {
	if vetID == "" {
		return nil, fmt.Errorf("%w: vet id is required", domain.ErrValidation)
	}
	return s.articles.FindByVet(ctx, vetID)
}

func (s *ArticleService) Delete(ctx context.Context, id, vetID string) error {
	if id == "" {
		return fmt.Errorf("%w: article id is required", domain.ErrValidation)
	}

	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if article.VetID != vetID {
		return domain.ErrForbidden
	}

	return s.articles.Delete(ctx, id)
}

func (s *ArticleService) AddComment(ctx context.Context, input ports.AddCommentInput) (*domain.Comment, error) {
	if input.Content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	if input.ArticleID == "" || input.UserID == "" {
		return nil, fmt.Errorf("%w: article id and user id are required", domain.ErrValidation)
	}

	if _, err := s.articles.FindByID(ctx, input.ArticleID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ArticleID: input.ArticleID,
		UserID:    input.UserID,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
	}

	return s.comments.Create(ctx, comment)
}

func (s *ArticleService) Comments(ctx context.Context, articleID string) ([]ports.CommentEntry, error) {
	if articleID == "" {
		return nil, fmt.Errorf("%w: article id is required", domain.ErrValidation)
	}

	comments, err := s.comments.FindByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.CommentEntry, 0, len(comments))
	for _, comment := range comments {
		entry := ports.CommentEntry{
			ID:        comment.ID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if user, err := s.users.FindByID(ctx, comment.UserID); err == nil {
			entry.User = ports.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
