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

const collectionAppointments = "appointments"

type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments)}
}

type appointmentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	VetID     primitive.ObjectID `bson:"vet_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	ServiceID primitive.ObjectID `bson:"service_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d appointmentDoc) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:        d.ID.Hex(),
		VetID:     d.VetID.Hex(),
		UserID:    d.UserID.Hex(),
		ServiceID: d.ServiceID.Hex(),
		CreatedAt: d.CreatedAt,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	vetOID, okV := parseID(appt.VetID)
	userOID, okU := parseID(appt.UserID)
	serviceOID, okS := parseID(appt.ServiceID)
	if !okV || !okU || !okS {
		return nil, domain.ErrAppointmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := appointmentDoc{
		VetID:     vetOID,
		UserID:    userOID,
		ServiceID: serviceOID,
		CreatedAt: appt.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	created := *appt
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByUser returns the user's appointments in insertion order, which is
// creation-time order for this append-only collection.
func (r *AppointmentRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Appointment, error) {
	oid, ok := parseID(userID)
	if !ok {
		return []*domain.Appointment{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": oid})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	appts := make([]*domain.Appointment, 0)
	for cur.Next(ctx) {
		var doc appointmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		appts = append(appts, doc.toDomain())
	}
	return appts, cur.Err()
}

// EnsureIndexes supports the per-user history query.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
