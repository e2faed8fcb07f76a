package domain

import "time"

// Rating is a user's score and review of a vet, 1 through 5.
type Rating struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	VetID     string    `json:"vet_id" bson:"vet_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Rating    int       `json:"rating" bson:"rating"`
	Review    string    `json:"review" bson:"review"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
