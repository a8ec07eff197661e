package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/mflix-space/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct{ coll *mongo.Collection }

func NewRepository(coll *mongo.Collection) *Repository { return &Repository{coll: coll} }

// Insert stores c and fills in the generated id.
func (r *Repository) Insert(ctx context.Context, c *models.CommentModel) error {
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return nil
}

// UpdateText replaces the text and refreshes the date. It reports whether a
// comment matched.
func (r *Repository) UpdateText(ctx context.Context, id primitive.ObjectID, text string, date time.Time) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": text, "date": date}},
	)
	if err != nil {
		return false, fmt.Errorf("update comment: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	return res.DeletedCount > 0, nil
}
