package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/appetiteclub/apt"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultMongoURL = "mongodb://localhost:27017"
	defaultDatabase = "scantoserve"

	connectTimeout = 10 * time.Second
)

// BaseRepo owns the MongoDB client lifecycle. It opens one database
// handle that every repository in the service shares.
type BaseRepo struct {
	client *mongo.Client
	db     *mongo.Database
	logger apt.Logger
	config *apt.Config
}

func NewBaseRepo(config *apt.Config, logger apt.Logger) *BaseRepo {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &BaseRepo{
		logger: logger,
		config: config,
	}
}

// Start connects and verifies the server is reachable before any
// repository is handed the database.
func (r *BaseRepo) Start(ctx context.Context) error {
	url := r.config.GetStringOrDef("db.mongo.url", defaultMongoURL)
	dbName := r.config.GetStringOrDef("db.mongo.name", defaultDatabase)

	opts := options.Client().
		ApplyURI(url).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("cannot connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("cannot ping MongoDB: %w", err)
	}

	r.client = client
	r.db = client.Database(dbName)

	r.logger.Info("Connected to MongoDB", "url", url, "database", dbName)
	return nil
}

// Stop disconnects the client. Safe to call before Start.
func (r *BaseRepo) Stop(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("cannot disconnect from MongoDB: %w", err)
	}
	r.logger.Info("Disconnected from MongoDB")
	return nil
}

// Database returns the handle opened by Start, or nil before Start.
func (r *BaseRepo) Database() *mongo.Database {
	return r.db
}
