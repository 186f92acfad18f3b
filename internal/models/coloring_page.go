package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ColoringPage represents a vector illustration template to be colored in
type ColoringPage struct {
	ID         string    `json:"id" bson:"id"`
	Name       string    `json:"name" bson:"name"`
	Category   string    `json:"category" bson:"category"`     // animals, vehicles, nature, ...
	Difficulty string    `json:"difficulty" bson:"difficulty"` // easy, medium, hard
	SVGContent string    `json:"svg_content" bson:"svg_content"`
	Thumbnail  *string   `json:"thumbnail" bson:"thumbnail,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// CreateColoringPageRequest represents a request to create a coloring page
type CreateColoringPageRequest struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Difficulty string  `json:"difficulty"`
	SVGContent string  `json:"svg_content"`
	Thumbnail  *string `json:"thumbnail"`
}

// Validate checks that all required fields are present
func (r *CreateColoringPageRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Category == "" {
		return fmt.Errorf("category is required")
	}
	if r.Difficulty == "" {
		return fmt.Errorf("difficulty is required")
	}
	if r.SVGContent == "" {
		return fmt.Errorf("svg_content is required")
	}
	return nil
}

// NewColoringPage builds a ColoringPage from a create request,
// assigning a fresh unique id and creation timestamp
func NewColoringPage(req *CreateColoringPageRequest) *ColoringPage {
	return &ColoringPage{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Category:   req.Category,
		Difficulty: req.Difficulty,
		SVGContent: req.SVGContent,
		Thumbnail:  req.Thumbnail,
		CreatedAt:  time.Now().UTC(),
	}
}
