package repositories

import (
	"context"
	"fmt"

	"github.com/coloringbook/backend/internal/database"
	"github.com/coloringbook/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type artworkRepository struct {
	coll *mongo.Collection
}

// NewArtworkRepository creates a new user artwork repository
func NewArtworkRepository(db *mongo.Database) *artworkRepository {
	return &artworkRepository{
		coll: db.Collection(database.UserArtworksCollection),
	}
}

// GetAll retrieves user artworks, optionally filtered by exact user_id match.
// Results are ordered by completed_at descending (most recent first) and
// capped at 100 documents.
func (r *artworkRepository) GetAll(ctx context.Context, userID string) ([]models.UserArtwork, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "completed_at", Value: -1}}).
		SetLimit(maxListResults)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query artworks: %w", err)
	}

	artworks := []models.UserArtwork{}
	if err := cursor.All(ctx, &artworks); err != nil {
		return nil, fmt.Errorf("failed to decode artworks: %w", err)
	}

	return artworks, nil
}

// Create persists a new user artwork built from the create request and
// returns the stored record including the generated id and timestamp
func (r *artworkRepository) Create(ctx context.Context, req *models.CreateUserArtworkRequest) (*models.UserArtwork, error) {
	artwork := models.NewUserArtwork(req)

	if _, err := r.coll.InsertOne(ctx, artwork); err != nil {
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}

	return artwork, nil
}

// DeleteByID removes a user artwork by its id
func (r *artworkRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete artwork: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("artwork not found")
	}

	return nil
}
