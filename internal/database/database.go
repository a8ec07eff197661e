package database

import (
	"context"
	"fmt"

	"github.com/mflix-space/core/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	MoviesCollection   = "movies"
	CommentsCollection = "comments"
)

// DB is the long-lived store handle. It is created once at startup and
// passed by reference into services.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a Mongo client and verifies connectivity.
func Connect(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout).SetServerSelectionTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return New(client, cfg.Database), nil
}

// New wraps an already connected client.
func New(client *mongo.Client, database string) *DB {
	return &DB{client: client, db: client.Database(database)}
}

func (d *DB) Database() *mongo.Database      { return d.db }
func (d *DB) Movies() *mongo.Collection      { return d.db.Collection(MoviesCollection) }
func (d *DB) Comments() *mongo.Collection    { return d.db.Collection(CommentsCollection) }
func (d *DB) Ping(ctx context.Context) error { return d.client.Ping(ctx, nil) }

// Disconnect closes the client. Safe to call on a nil handle.
func (d *DB) Disconnect(ctx context.Context) error {
	if d == nil || d.client == nil {
		return nil
	}
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the request paths rely on.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.Comments().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "movie_id", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("movie_id_date"),
	})
	if err != nil {
		return fmt.Errorf("create comments index: %w", err)
	}
	return nil
}

// LogCatalog reports the collections and movie count once at startup.
func (d *DB) LogCatalog(ctx context.Context, log *zap.Logger) {
	names, err := d.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		log.Warn("list collections failed", zap.Error(err))
		return
	}
	count, err := d.Movies().EstimatedDocumentCount(ctx)
	if err != nil {
		log.Warn("count movies failed", zap.Error(err))
		return
	}
	log.Info("connected to MongoDB",
		zap.String("database", d.db.Name()),
		zap.Strings("collections", names),
		zap.Int64("movies", count),
	)
}
