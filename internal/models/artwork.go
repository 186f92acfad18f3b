package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserArtwork represents a user's completed version of a coloring page,
// stored as base64 encoded raster data
type UserArtwork struct {
	ID             string    `json:"id" bson:"id"`
	UserID         *string   `json:"user_id" bson:"user_id,omitempty"`
	ColoringPageID string    `json:"coloring_page_id" bson:"coloring_page_id"`
	ArtworkData    string    `json:"artwork_data" bson:"artwork_data"`
	CompletedAt    time.Time `json:"completed_at" bson:"completed_at"`
	Title          *string   `json:"title" bson:"title,omitempty"`
}

// CreateUserArtworkRequest represents a request to save a user's artwork
type CreateUserArtworkRequest struct {
	UserID         *string `json:"user_id"`
	ColoringPageID string  `json:"coloring_page_id"`
	ArtworkData    string  `json:"artwork_data"`
	Title          *string `json:"title"`
}

// Validate checks that all required fields are present
//
// Note: coloring_page_id is not checked against existing coloring pages,
// referential integrity is not enforced anywhere in the system.
func (r *CreateUserArtworkRequest) Validate() error {
	if r.ColoringPageID == "" {
		return fmt.Errorf("coloring_page_id is required")
	}
	if r.ArtworkData == "" {
		return fmt.Errorf("artwork_data is required")
	}
	return nil
}

// NewUserArtwork builds a UserArtwork from a create request,
// assigning a fresh unique id and completion timestamp
func NewUserArtwork(req *CreateUserArtworkRequest) *UserArtwork {
	return &UserArtwork{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		ColoringPageID: req.ColoringPageID,
		ArtworkData:    req.ArtworkData,
		CompletedAt:    time.Now().UTC(),
		Title:          req.Title,
	}
}
