package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

const collectionPets = "pets"

type PetRepository struct {
	col *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *PetRepository {
	return &PetRepository{col: db.Collection(collectionPets)}
}

type petDoc struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Name                string             `bson:"name"`
	Picture             string             `bson:"picture"`
	Species             string             `bson:"species"`
	Breed               string             `bson:"breed"`
	Age                 int                `bson:"age"`
	Sex                 string             `bson:"sex"`
	VaccinationStatus   string             `bson:"vaccination_status"`
	LastVaccinationDate time.Time          `bson:"last_vaccination_date"`
	HealthStatus        string             `bson:"health_status"`
	OwnerID             primitive.ObjectID `bson:"owner_id"`
	CreatedAt           time.Time          `bson:"created_at"`
}

func (d petDoc) toDomain() *domain.Pet {
	return &domain.Pet{
		ID:                  d.ID.Hex(),
		Name:                d.Name,
		Picture:             d.Picture,
		Species:             d.Species,
		Breed:               d.Breed,
		Age:                 d.Age,
		Sex:                 d.Sex,
		VaccinationStatus:   domain.VaccinationStatus(d.VaccinationStatus),
		LastVaccinationDate: d.LastVaccinationDate,
		HealthStatus:        domain.HealthStatus(d.HealthStatus),
		OwnerID:             d.OwnerID.Hex(),
		CreatedAt:           d.CreatedAt,
	}
}

func petToDoc(pet *domain.Pet) (petDoc, error) {
	ownerOID, ok := parseID(pet.OwnerID)
	if !ok {
		return petDoc{}, domain.ErrUserNotFound
	}
	return petDoc{
		Name:                pet.Name,
		Picture:             pet.Picture,
		Species:             pet.Species,
		Breed:               pet.Breed,
		Age:                 pet.Age,
		Sex:                 pet.Sex,
		VaccinationStatus:   string(pet.VaccinationStatus),
		LastVaccinationDate: pet.LastVaccinationDate,
		HealthStatus:        string(pet.HealthStatus),
		OwnerID:             ownerOID,
		CreatedAt:           pet.CreatedAt,
	}, nil
}

func (r *PetRepository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	doc, err := petToDoc(pet)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert pet: %w", err)
	}

	created := *pet
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PetRepository) FindByID(ctx context.Context, id string) (*domain.Pet, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrPetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc petDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PetRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error) {
	oid, ok := parseID(ownerID)
	if !ok {
		return []*domain.Pet{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"owner_id": oid})
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer cur.Close(ctx)

	pets := make([]*domain.Pet, 0)
	for cur.Next(ctx) {
		var doc petDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode pet: %w", err)
		}
		pets = append(pets, doc.toDomain())
	}
	return pets, cur.Err()
}

func (r *PetRepository) Update(ctx context.Context, pet *domain.Pet) error {
	oid, ok := parseID(pet.ID)
	if !ok {
		return domain.ErrPetNotFound
	}
	doc, err := petToDoc(pet)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrPetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

// EnsureIndexes supports the owner-scoped listing.
func (r *PetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
