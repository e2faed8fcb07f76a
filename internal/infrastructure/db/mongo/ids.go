package mongo

import "go.mongodb.org/mongo-driver/bson/primitive"

// parseID converts a hex string id into an ObjectID. The second return value
// is false for malformed ids; callers translate that into their NotFound
// sentinel so a garbage id reads as a missing document, not a server error.
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
