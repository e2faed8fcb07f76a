package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

const collectionRatings = "ratings"

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{col: db.Collection(collectionRatings)}
}

type ratingDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	VetID     primitive.ObjectID `bson:"vet_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Rating    int                `bson:"rating"`
	Review    string             `bson:"review"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d ratingDoc) toDomain() *domain.Rating {
	return &domain.Rating{
		ID:        d.ID.Hex(),
		VetID:     d.VetID.Hex(),
		UserID:    d.UserID.Hex(),
		Rating:    d.Rating,
		Review:    d.Review,
		CreatedAt: d.CreatedAt,
	}
}

func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	vetOID, okV := parseID(rating.VetID)
	userOID, okU := parseID(rating.UserID)
	if !okV || !okU {
		return nil, domain.ErrVetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := ratingDoc{
		VetID:     vetOID,
		UserID:    userOID,
		Rating:    rating.Rating,
		Review:    rating.Review,
		CreatedAt: rating.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert rating: %w", err)
	}

	created := *rating
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RatingRepository) FindByVet(ctx context.Context, vetID string) ([]*domain.Rating, error) {
	oid, ok := parseID(vetID)
	if !ok {
		return []*domain.Rating{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"vet_id": oid})
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer cur.Close(ctx)

	ratings := make([]*domain.Rating, 0)
	for cur.Next(ctx) {
		var doc ratingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode rating: %w", err)
		}
		ratings = append(ratings, doc.toDomain())
	}
	return ratings, cur.Err()
}
