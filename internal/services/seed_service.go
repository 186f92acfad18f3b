package services

import (
	"context"
	"fmt"

	"github.com/coloringbook/backend/internal/models"
	"go.uber.org/zap"
)

// SeedColoringPagesRepository wraps the coloring page operations needed by the seed routine
type SeedColoringPagesRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, req *models.CreateColoringPageRequest) (*models.ColoringPage, error)
}

// SeedStickersRepository wraps the sticker operations needed by the seed routine
type SeedStickersRepository interface {
	Create(ctx context.Context, name, category, svgContent string) (*models.Sticker, error)
}

type seedService struct {
	pageRepo    SeedColoringPagesRepository
	stickerRepo SeedStickersRepository
	logger      *zap.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(pageRepo SeedColoringPagesRepository, stickerRepo SeedStickersRepository, logger *zap.Logger) *seedService {
	return &seedService{
		pageRepo:    pageRepo,
		stickerRepo: stickerRepo,
		logger:      logger,
	}
}

// Initialize populates the store with the fixed sample set when no coloring
// pages exist yet. Returns false without writing anything when the collection
// is already populated.
//
// The check-then-insert sequence is not guarded against concurrent
// invocation; a race only results in duplicate sample rows.
func (s *seedService) Initialize(ctx context.Context) (bool, error) {
	count, err := s.pageRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check existing coloring pages: %w", err)
	}

	if count > 0 {
		s.logger.Info("seed skipped, data already initialized", zap.Int64("existing_pages", count))
		return false, nil
	}

	for i := range samplePages {
		if _, err := s.pageRepo.Create(ctx, &samplePages[i]); err != nil {
			return false, fmt.Errorf("failed to seed coloring page %q: %w", samplePages[i].Name, err)
		}
	}

	for _, sticker := range sampleStickers {
		if _, err := s.stickerRepo.Create(ctx, sticker.name, sticker.category, sticker.svgContent); err != nil {
			return false, fmt.Errorf("failed to seed sticker %q: %w", sticker.name, err)
		}
	}

	s.logger.Info("default data initialized",
		zap.Int("coloring_pages", len(samplePages)),
		zap.Int("stickers", len(sampleStickers)),
	)

	return true, nil
}
