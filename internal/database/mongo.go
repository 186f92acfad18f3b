// Package database manages the document store connection lifecycle
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the repositories
const (
	ColoringPagesCollection = "coloring_pages"
	UserArtworksCollection  = "user_artworks"
	StickersCollection      = "stickers"
)

// Connect establishes a connection to the document store and verifies it with a ping
func Connect(ctx context.Context, url string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the equality-filter indexes used by the list endpoints:
// category on coloring pages and stickers, user_id plus completed_at on artworks
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := db.Collection(ColoringPagesCollection).Indexes().CreateOne(indexCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create coloring pages index: %w", err)
	}

	_, err = db.Collection(UserArtworksCollection).Indexes().CreateMany(indexCtx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "completed_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create user artworks indexes: %w", err)
	}

	_, err = db.Collection(StickersCollection).Indexes().CreateOne(indexCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create stickers index: %w", err)
	}

	return nil
}
