package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap/zaptest"
)

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates comment index", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		db := New(mt.Client, "sample_mflix")
		require.NoError(mt, db.EnsureIndexes(context.Background()))
	})

	mt.Run("wraps driver error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Message: "index options conflict",
			Name:    "IndexOptionsConflict",
		}))
		db := New(mt.Client, "sample_mflix")
		err := db.EnsureIndexes(context.Background())
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "create comments index")
	})
}

func TestCollections(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("names", func(mt *mtest.T) {
		db := New(mt.Client, "sample_mflix")
		assert.Equal(mt, MoviesCollection, db.Movies().Name())
		assert.Equal(mt, CommentsCollection, db.Comments().Name())
		assert.Equal(mt, "sample_mflix", db.Database().Name())
	})

	mt.Run("log catalog", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "sample_mflix.$cmd.listCollections", mtest.FirstBatch,
				bson.D{{Key: "name", Value: "movies"}, {Key: "type", Value: "collection"}}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(3)}),
		)
		db := New(mt.Client, "sample_mflix")
		db.LogCatalog(context.Background(), zaptest.NewLogger(mt))
	})
}

func TestDisconnectNil(t *testing.T) {
	var db *DB
	assert.NoError(t, db.Disconnect(context.Background()))
}
