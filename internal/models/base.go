package models

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a path or body identifier is not a 24-char hex ObjectID.
var ErrInvalidID = errors.New("invalid object id")

// ParseObjectID validates a hex identifier before it reaches the store.
func ParseObjectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
