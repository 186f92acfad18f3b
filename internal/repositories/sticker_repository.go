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

type stickerRepository struct {
	coll *mongo.Collection
}

// NewStickerRepository creates a new sticker repository
func NewStickerRepository(db *mongo.Database) *stickerRepository {
	return &stickerRepository{
		coll: db.Collection(database.StickersCollection),
	}
}

// GetAll retrieves stickers, optionally filtered by exact category match.
// Results are capped at 100 documents.
func (r *stickerRepository) GetAll(ctx context.Context, category string) ([]models.Sticker, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(maxListResults))
	if err != nil {
		return nil, fmt.Errorf("failed to query stickers: %w", err)
	}

	stickers := []models.Sticker{}
	if err := cursor.All(ctx, &stickers); err != nil {
		return nil, fmt.Errorf("failed to decode stickers: %w", err)
	}

	return stickers, nil
}

// Create persists a new sticker and returns the stored record.
// Stickers are only created through the seed routine, the API exposes no create endpoint.
func (r *stickerRepository) Create(ctx context.Context, name, category, svgContent string) (*models.Sticker, error) {
	sticker := models.NewSticker(name, category, svgContent)

	if _, err := r.coll.InsertOne(ctx, sticker); err != nil {
		return nil, fmt.Errorf("failed to create sticker: %w", err)
	}

	return sticker, nil
}
