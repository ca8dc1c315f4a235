// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver. The profile aggregate is one document;
// all writes replace the whole document under a version guard.
package mongo

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	profilesCollection = "users"
	productsCollection = "products"
	feedbackCollection = "feedbacks"
)

// Params defines the parameters required to open the store connection.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to the configured MongoDB deployment, verifies reachability,
// ensures the indexes the repositories rely on, and registers disconnect with
// the fx lifecycle.
func New(params Params) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	db := client.Database(params.Config.Mongo.Database)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	params.Logger.Info("Connected to MongoDB", "database", params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Disconnecting from MongoDB")

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect from mongodb")
		},
	})

	return db, nil
}

// ensureIndexes creates the unique email index that backs the signup
// duplicate check under concurrent registrations.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(profilesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return errors.Wrap(err, "failed to ensure email index")
}
