package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MikeMC777/lessons-booking/internal/apperr"
)

// ParseID is the single boundary where route and body identifiers become
// store-native ids. Every by-id operation goes through it before touching a
// repository, on every backend.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", apperr.ErrInvalidIdentifier, s)
	}
	return id, nil
}

// ParseIDs keeps the input order, duplicates included.
func ParseIDs(in []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(in))
	for _, s := range in {
		id, err := ParseID(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// NewID generates an id for backends that do not assign one themselves.
func NewID() primitive.ObjectID { return primitive.NewObjectID() }

func Distinct(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Hexes renders ids the way the relational backend stores them.
func Hexes(ids []primitive.ObjectID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Hex()
	}
	return out
}
