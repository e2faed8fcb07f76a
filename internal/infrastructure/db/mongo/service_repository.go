package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

const collectionServices = "services"

type ServiceRepository struct {
	col *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{col: db.Collection(collectionServices)}
}

type serviceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Cost        float64            `bson:"cost"`
	VetID       primitive.ObjectID `bson:"vet_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d serviceDoc) toDomain() *domain.Service {
	return &domain.Service{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Cost:        d.Cost,
		VetID:       d.VetID.Hex(),
		CreatedAt:   d.CreatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	vetOID, ok := parseID(svc.VetID)
	if !ok {
		return nil, domain.ErrVetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := serviceDoc{
		Name:        svc.Name,
		Description: svc.Description,
		Cost:        svc.Cost,
		VetID:       vetOID,
		CreatedAt:   svc.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}

	created := *svc
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrServiceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc serviceDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) FindByVet(ctx context.Context, vetID string) ([]*domain.Service, error) {
	oid, ok := parseID(vetID)
	if !ok {
		return []*domain.Service{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{"vet_id": oid})
}

// Search is a case-insensitive substring match on name or description. No
// text index and no ranking; the interface lets this be swapped for an
// indexed implementation later.
func (r *ServiceRepository) Search(ctx context.Context, text string) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
	}}
	return r.find(ctx, filter)
}

func (r *ServiceRepository) find(ctx context.Context, filter bson.M) ([]*domain.Service, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cur.Close(ctx)

	services := make([]*domain.Service, 0)
	for cur.Next(ctx) {
		var doc serviceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		services = append(services, doc.toDomain())
	}
	return services, cur.Err()
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrServiceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

// EnsureIndexes supports the per-vet listing.
func (r *ServiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "vet_id", Value: 1}},
	})
	return err
}
