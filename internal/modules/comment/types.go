package comment

import (
	"context"
	"errors"
	"time"

	"github.com/mflix-space/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	errMissingFields   = errors.New("movie_id, name and text are required")
	errMissingText     = errors.New("text is required")
)

type CreateCommentDTO struct {
	MovieID string `json:"movie_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Text    string `json:"text"`
}

type UpdateCommentDTO struct {
	Text string `json:"text"`
}

// Store is the comment persistence capability.
type Store interface {
	Insert(ctx context.Context, c *models.CommentModel) error
	UpdateText(ctx context.Context, id primitive.ObjectID, text string, date time.Time) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
