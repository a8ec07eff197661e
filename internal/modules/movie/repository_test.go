package movie

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "sample_mflix.movies"

func newRepo(mt *mtest.T) *Repository {
	return NewRepository(mt.DB.Collection("movies"), mt.DB.Collection("comments"))
}

func TestRepositoryList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns page and total", func(mt *mtest.T) {
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(42)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: id1}, {Key: "title", Value: "Tenet"}, {Key: "year", Value: int32(2020)}},
				bson.D{{Key: "_id", Value: id2}, {Key: "title", Value: "Inception"}, {Key: "year", Value: int32(2010)}, {Key: "poster", Value: "p.jpg"}},
			),
		)

		items, total, err := newRepo(mt).List(context.Background(), 20, 20)
		require.NoError(mt, err)
		assert.Equal(mt, int64(42), total)
		require.Len(mt, items, 2)
		assert.Equal(mt, id1, items[0]["_id"])
		assert.Equal(mt, "Inception", items[1]["title"])
		assert.EqualValues(mt, 2010, items[1]["year"])
		assert.Equal(mt, "p.jpg", items[1]["poster"])
	})

	mt.Run("mistyped year is relayed", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Odd"}, {Key: "year", Value: "2012è"}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: int32(1776)}, {Key: "year", Value: int32(1972)}},
			),
		)
		items, _, err := newRepo(mt).List(context.Background(), 0, 20)
		require.NoError(mt, err)
		require.Len(mt, items, 2)
		assert.Equal(mt, "2012è", items[0]["year"])
		assert.EqualValues(mt, 1776, items[1]["title"])
	})

	mt.Run("empty page is not nil", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
		)
		items, total, err := newRepo(mt).List(context.Background(), 0, 20)
		require.NoError(mt, err)
		assert.Zero(mt, total)
		assert.NotNil(mt, items)
		assert.Empty(mt, items)
	})

	mt.Run("store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom", Name: "BadValue"}))
		_, _, err := newRepo(mt).List(context.Background(), 0, 20)
		require.Error(mt, err)
	})
}

func TestRepositoryFindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Inception"},
			{Key: "genre", Value: bson.A{"Sci-Fi", "Action"}},
			{Key: "rating", Value: 8.8},
		}))
		m, err := newRepo(mt).FindByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, id, m["_id"])
		assert.Equal(mt, "Inception", m["title"])
		assert.Equal(mt, bson.A{"Sci-Fi", "Action"}, m["genre"])
		assert.Equal(mt, 8.8, m["rating"])
	})

	mt.Run("mistyped fields and unknown keys survive", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Heat"},
			{Key: "year", Value: "1995è"},
			{Key: "genre", Value: "Crime"},
			{Key: "imdb", Value: bson.D{{Key: "rating", Value: ""}, {Key: "votes", Value: int32(5)}}},
			{Key: "tomatoes", Value: bson.D{{Key: "fresh", Value: int32(1)}}},
		}))
		m, err := newRepo(mt).FindByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, "1995è", m["year"])
		assert.Equal(mt, "Crime", m["genre"])
		assert.Equal(mt, bson.M{"rating": "", "votes": int32(5)}, m["imdb"])
		assert.Contains(mt, m, "tomatoes")
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		_, err := newRepo(mt).FindByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrMovieNotFound)
	})
}

func TestRepositoryRecentComments(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes comments", func(mt *mtest.T) {
		movieID := primitive.NewObjectID()
		now := time.Now().UTC().Truncate(time.Millisecond)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "sample_mflix.comments", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "movie_id", Value: movieID},
				{Key: "name", Value: "Ned"},
				{Key: "text", Value: "newer"},
				{Key: "date", Value: primitive.NewDateTimeFromTime(now)},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "movie_id", Value: movieID},
				{Key: "name", Value: "Arya"},
				{Key: "text", Value: "older"},
				{Key: "date", Value: primitive.NewDateTimeFromTime(now.Add(-time.Hour))},
			},
		))
		out, err := newRepo(mt).RecentComments(context.Background(), movieID, detailCommentLimit)
		require.NoError(mt, err)
		require.Len(mt, out, 2)
		assert.Equal(mt, "newer", out[0].Text)
		assert.Equal(mt, movieID, out[1].MovieID)
		assert.True(mt, out[0].Date.Equal(now))
	})
}

func TestRepositoryFindIDByTitle(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("match", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "_id", Value: id}}))
		got, ok, err := newRepo(mt).FindIDByTitle(context.Background(), "inception")
		require.NoError(mt, err)
		assert.True(mt, ok)
		assert.Equal(mt, id, got)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		filter := started.Command.Lookup("filter").Document()
		pattern, options := filter.Lookup("title").Regex()
		assert.Equal(mt, "^inception$", pattern)
		assert.Equal(mt, "i", options)
	})

	mt.Run("metacharacters are quoted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		_, ok, err := newRepo(mt).FindIDByTitle(context.Background(), "Se7en (1995)?")
		require.NoError(mt, err)
		assert.False(mt, ok)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		pattern, _ := filter.Lookup("title").Regex()
		assert.Equal(mt, `^Se7en \(1995\)\?$`, pattern)
	})
}

func TestRepositorySummaries(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes flexible fields", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "A"}, {Key: "year", Value: int32(2001)}, {Key: "genre", Value: "Drama"}, {Key: "rating", Value: int32(7)}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "B"}, {Key: "genre", Value: bson.A{"Comedy", " "}}, {Key: "rating", Value: 6.5}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "C"}, {Key: "year", Value: "1995è"}, {Key: "genre", Value: "War"}, {Key: "rating", Value: ""}},
		))
		out, err := newRepo(mt).Summaries(context.Background(), 200)
		require.NoError(mt, err)
		require.Len(mt, out, 3)
		assert.Equal(mt, "Drama", out[0].Genre.String())
		assert.Equal(mt, "2001", out[0].Year.String())
		assert.Equal(mt, "7", out[0].Rating.String())
		assert.True(mt, out[1].Year.Missing())
		assert.Equal(mt, "Comedy", out[1].Genre.String())
		assert.Equal(mt, "1995è", out[2].Year.String())
		assert.True(mt, out[2].Rating.Missing())
	})
}
