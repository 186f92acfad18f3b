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

// maxListResults caps every list query; the API exposes no pagination cursor
const maxListResults = 100

type coloringPageRepository struct {
	coll *mongo.Collection
}

// NewColoringPageRepository creates a new coloring page repository
func NewColoringPageRepository(db *mongo.Database) *coloringPageRepository {
	return &coloringPageRepository{
		coll: db.Collection(database.ColoringPagesCollection),
	}
}

// GetAll retrieves coloring pages, optionally filtered by exact category match.
// An empty category returns all pages. Results are capped at 100 documents.
func (r *coloringPageRepository) GetAll(ctx context.Context, category string) ([]models.ColoringPage, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(maxListResults))
	if err != nil {
		return nil, fmt.Errorf("failed to query coloring pages: %w", err)
	}

	pages := []models.ColoringPage{}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, fmt.Errorf("failed to decode coloring pages: %w", err)
	}

	return pages, nil
}

// Create persists a new coloring page built from the create request and
// returns the stored record including the generated id and timestamp
func (r *coloringPageRepository) Create(ctx context.Context, req *models.CreateColoringPageRequest) (*models.ColoringPage, error) {
	page := models.NewColoringPage(req)

	if _, err := r.coll.InsertOne(ctx, page); err != nil {
		return nil, fmt.Errorf("failed to create coloring page: %w", err)
	}

	return page, nil
}

// GetByID retrieves a coloring page by its id
func (r *coloringPageRepository) GetByID(ctx context.Context, id string) (*models.ColoringPage, error) {
	page := &models.ColoringPage{}
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(page)

	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("coloring page not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get coloring page by id: %w", err)
	}

	return page, nil
}

// Count returns the number of coloring pages in the collection
func (r *coloringPageRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count coloring pages: %w", err)
	}

	return count, nil
}
