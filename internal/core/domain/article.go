package domain

import (
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")

// Article is editorial content published by a vet.
type Article struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	VetID     string    `json:"vet_id" bson:"vet_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Comment is a user's reply under an article.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ArticleID string    `json:"article_id" bson:"article_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
