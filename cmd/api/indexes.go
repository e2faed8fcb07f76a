package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	mongodb "github.com/pawcare/vetmarket/internal/infrastructure/db/mongo"
)

// ensureIndexes creates every collection index the repositories rely on.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewVetRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewPetRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewServiceRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewAppointmentRepository(db).EnsureIndexes(ctx)
}
