package models

import (
	"time"

	"github.com/google/uuid"
)

// Sticker represents a small decorative vector asset.
// Stickers are read-only from the API perspective and are only
// created through the seed routine.
type Sticker struct {
	ID         string    `json:"id" bson:"id"`
	Name       string    `json:"name" bson:"name"`
	Category   string    `json:"category" bson:"category"`
	SVGContent string    `json:"svg_content" bson:"svg_content"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// NewSticker builds a Sticker, assigning a fresh unique id and creation timestamp
func NewSticker(name, category, svgContent string) *Sticker {
	return &Sticker{
		ID:         uuid.New().String(),
		Name:       name,
		Category:   category,
		SVGContent: svgContent,
		CreatedAt:  time.Now().UTC(),
	}
}
