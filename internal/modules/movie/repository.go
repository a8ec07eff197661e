package movie

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/mflix-space/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository reads movies and their comments from Mongo.
type Repository struct {
	movies   *mongo.Collection
	comments *mongo.Collection
}

func NewRepository(movies, comments *mongo.Collection) *Repository {
	return &Repository{movies: movies, comments: comments}
}

// List returns one page of {_id, title, year, poster} projections, newest
// year first. Documents are relayed as stored.
func (r *Repository) List(ctx context.Context, skip, limit int64) ([]models.MovieDocument, int64, error) {
	total, err := r.movies.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	opts := options.Find().
		SetProjection(bson.M{"title": 1, "year": 1, "poster": 1}).
		SetSort(bson.D{{Key: "year", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.movies.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find movies: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.MovieDocument, 0, limit)
	for cursor.Next(ctx) {
		doc, err := models.DecodeMovieDocument(cursor.Current)
		if err != nil {
			return nil, 0, fmt.Errorf("decode movies: %w", err)
		}
		items = append(items, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate movies: %w", err)
	}
	return items, total, nil
}

func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (models.MovieDocument, error) {
	raw, err := r.movies.FindOne(ctx, bson.M{"_id": id}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	doc, err := models.DecodeMovieDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("decode movie: %w", err)
	}
	return doc, nil
}

func (r *Repository) RecentComments(ctx context.Context, movieID primitive.ObjectID, limit int64) ([]models.CommentModel, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.comments.Find(ctx, bson.M{"movie_id": movieID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find comments: %w", err)
	}
	out := make([]models.CommentModel, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return out, nil
}

// FindIDByTitle matches the whole title case-insensitively. Regex
// metacharacters in the title are matched literally.
func (r *Repository) FindIDByTitle(ctx context.Context, title string) (primitive.ObjectID, bool, error) {
	filter := bson.M{"title": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(title) + "$",
		Options: "i",
	}}
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	var doc struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := r.movies.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, false, nil
		}
		return primitive.NilObjectID, false, fmt.Errorf("find movie by title: %w", err)
	}
	return doc.ID, true, nil
}

// Summaries loads the narrowed projection used for recommendation digests.
// Documents without a genre or a non-zero rating are skipped server side;
// the digest applies the same rule again to whatever slips through.
func (r *Repository) Summaries(ctx context.Context, limit int64) ([]models.MovieSummary, error) {
	filter := bson.M{
		"genre":  bson.M{"$nin": bson.A{nil, "", bson.A{}}},
		"rating": bson.M{"$nin": bson.A{nil, 0, ""}},
	}
	opts := options.Find().
		SetProjection(bson.M{"title": 1, "year": 1, "genre": 1, "plot": 1, "rating": 1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.movies.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find movie summaries: %w", err)
	}
	out := make([]models.MovieSummary, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode movie summaries: %w", err)
	}
	return out, nil
}
