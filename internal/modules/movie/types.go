package movie

import (
	"context"
	"errors"

	"github.com/mflix-space/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// detailCommentLimit caps the comments returned with a movie.
const detailCommentLimit = 20

var ErrMovieNotFound = errors.New("movie not found")

// Store is the catalog capability the movie endpoints need.
type Store interface {
	List(ctx context.Context, skip, limit int64) ([]models.MovieDocument, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.MovieDocument, error)
	RecentComments(ctx context.Context, movieID primitive.ObjectID, limit int64) ([]models.CommentModel, error)
	FindIDByTitle(ctx context.Context, title string) (primitive.ObjectID, bool, error)
}

type listResponse struct {
	Movies      []models.MovieDocument `json:"movies"`
	TotalPages  int                    `json:"totalPages"`
	CurrentPage int                    `json:"currentPage"`
}

type detailResponse struct {
	Movie    models.MovieDocument  `json:"movie"`
	Comments []models.CommentModel `json:"comments"`
}

type checkResponse struct {
	Exists bool   `json:"exists"`
	ID     string `json:"id,omitempty"`
}
