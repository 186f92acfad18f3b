package services

import (
	"context"

	"github.com/coloringbook/backend/internal/models"
)

// StickersRepository is the interface that wraps methods for stickers collection data access
type StickersRepository interface {
	// Method GetAll retrieve stickers from the document store, optionally filtered by exact category match.
	//
	// Results are capped at 100 documents.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context, category string) ([]models.Sticker, error)
}

type stickerService struct {
	repo StickersRepository
}

// NewStickerService creates a new sticker service
func NewStickerService(repo StickersRepository) *stickerService {
	return &stickerService{
		repo: repo,
	}
}

// GetAll retrieves stickers filtered by category (empty category returns all)
func (s *stickerService) GetAll(ctx context.Context, category string) ([]models.Sticker, error) {
	return s.repo.GetAll(ctx, category)
}
