package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

const collectionVets = "vets"

type VetRepository struct {
	col *mongo.Collection
}

func NewVetRepository(db *mongo.Database) *VetRepository {
	return &VetRepository{col: db.Collection(collectionVets)}
}

type vetDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Location       string             `bson:"location"`
	Specialization string             `bson:"specialization"`
	Certifications []string           `bson:"certifications"`
	UserID         primitive.ObjectID `bson:"user_id"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d vetDoc) toDomain() *domain.Vet {
	return &domain.Vet{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Location:       d.Location,
		Specialization: d.Specialization,
		Certifications: d.Certifications,
		UserID:         d.UserID.Hex(),
		CreatedAt:      d.CreatedAt,
	}
}

func (r *VetRepository) Create(ctx context.Context, vet *domain.Vet) (*domain.Vet, error) {
	userOID, ok := parseID(vet.UserID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := vetDoc{
		Name:           vet.Name,
		Location:       vet.Location,
		Specialization: vet.Specialization,
		Certifications: vet.Certifications,
		UserID:         userOID,
		CreatedAt:      vet.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrVetProfileExists
		}
		return nil, fmt.Errorf("insert vet: %w", err)
	}

	created := *vet
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *VetRepository) FindByID(ctx context.Context, id string) (*domain.Vet, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrVetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc vetDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVetNotFound
		}
		return nil, fmt.Errorf("find vet: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VetRepository) FindByUserID(ctx context.Context, userID string) (*domain.Vet, error) {
	oid, ok := parseID(userID)
	if !ok {
		return nil, domain.ErrVetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc vetDoc
	if err := r.col.FindOne(ctx, bson.M{"user_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVetNotFound
		}
		return nil, fmt.Errorf("find vet by user: %w", err)
	}
	return doc.toDomain(), nil
}

// All returns the full directory in insertion order. The emergency lookup
// filters this in memory; fine at directory scale.
func (r *VetRepository) All(ctx context.Context) ([]*domain.Vet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list vets: %w", err)
	}
	defer cur.Close(ctx)

	vets := make([]*domain.Vet, 0)
	for cur.Next(ctx) {
		var doc vetDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode vet: %w", err)
		}
		vets = append(vets, doc.toDomain())
	}
	return vets, cur.Err()
}

// EnsureIndexes enforces one vet profile per user account.
func (r *VetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
