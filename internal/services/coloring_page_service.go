package services

import (
	"context"

	"github.com/coloringbook/backend/internal/models"
)

// ColoringPagesRepository is the interface that wraps methods for coloring pages collection data access
type ColoringPagesRepository interface {
	// Method GetAll retrieve coloring pages from the document store, optionally filtered by exact category match.
	//
	// An empty "category" parameter returns all pages. Results are capped at 100 documents.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context, category string) ([]models.ColoringPage, error)
	// Method Create persists a new coloring page with a generated id and creation timestamp.
	//
	// Returns the stored record, or an error if the insert fails.
	Create(ctx context.Context, req *models.CreateColoringPageRequest) (*models.ColoringPage, error)
	// Method GetByID retrieve a coloring page by its id.
	//
	// A missing id yields a "coloring page not found" error.
	GetByID(ctx context.Context, id string) (*models.ColoringPage, error)
	// Method Count returns the number of coloring pages in the collection.
	Count(ctx context.Context) (int64, error)
}

type coloringPageService struct {
	repo ColoringPagesRepository
}

// NewColoringPageService creates a new coloring page service
func NewColoringPageService(repo ColoringPagesRepository) *coloringPageService {
	return &coloringPageService{
		repo: repo,
	}
}

// GetAll retrieves coloring pages filtered by category (empty category returns all)
func (s *coloringPageService) GetAll(ctx context.Context, category string) ([]models.ColoringPage, error) {
	return s.repo.GetAll(ctx, category)
}

// Create persists a new coloring page and returns the stored record
func (s *coloringPageService) Create(ctx context.Context, req *models.CreateColoringPageRequest) (*models.ColoringPage, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a coloring page by its id
func (s *coloringPageService) GetByID(ctx context.Context, id string) (*models.ColoringPage, error) {
	return s.repo.GetByID(ctx, id)
}
