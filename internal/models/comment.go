package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentModel is a comment attached to a movie.
type CommentModel struct {
	ID      primitive.ObjectID `json:"_id"             bson:"_id,omitempty"`
	MovieID primitive.ObjectID `json:"movie_id"        bson:"movie_id"`
	Name    string             `json:"name"            bson:"name"`
	Email   string             `json:"email,omitempty" bson:"email,omitempty"`
	Text    string             `json:"text"            bson:"text"`
	Date    time.Time          `json:"date"            bson:"date"`
}
