package services

import (
	"context"

	"github.com/coloringbook/backend/internal/models"
)

// ArtworksRepository is the interface that wraps methods for user artworks collection data access
type ArtworksRepository interface {
	// Method GetAll retrieve user artworks from the document store, optionally filtered by exact user_id match.
	//
	// Results are ordered by completed_at descending and capped at 100 documents.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context, userID string) ([]models.UserArtwork, error)
	// Method Create persists a new user artwork with a generated id and completion timestamp.
	//
	// Returns the stored record, or an error if the insert fails.
	Create(ctx context.Context, req *models.CreateUserArtworkRequest) (*models.UserArtwork, error)
	// Method DeleteByID removes a user artwork by its id.
	//
	// A missing id yields an "artwork not found" error.
	DeleteByID(ctx context.Context, id string) error
}

type artworkService struct {
	repo ArtworksRepository
}

// NewArtworkService creates a new user artwork service
func NewArtworkService(repo ArtworksRepository) *artworkService {
	return &artworkService{
		repo: repo,
	}
}

// GetAll retrieves user artworks filtered by user id (empty userID returns all),
// ordered newest first
func (s *artworkService) GetAll(ctx context.Context, userID string) ([]models.UserArtwork, error) {
	return s.repo.GetAll(ctx, userID)
}

// Create persists a new user artwork and returns the stored record.
// The referenced coloring page is not checked for existence.
func (s *artworkService) Create(ctx context.Context, req *models.CreateUserArtworkRequest) (*models.UserArtwork, error) {
	return s.repo.Create(ctx, req)
}

// DeleteByID removes a user artwork by its id
func (s *artworkService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
