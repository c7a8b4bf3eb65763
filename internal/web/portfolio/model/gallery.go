package model

import (
	"time"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryCategory gallery item category
type GalleryCategory string

const (
	GalleryCategoryProject     GalleryCategory = "Project"
	GalleryCategoryAchievement GalleryCategory = "Achievement"
	GalleryCategoryTeam        GalleryCategory = "Team"
	GalleryCategoryEvent       GalleryCategory = "Event"
)

// Valid whether the category is one of the known values
func (c GalleryCategory) Valid() bool {
	switch c {
	case GalleryCategoryProject, GalleryCategoryAchievement,
		GalleryCategoryTeam, GalleryCategoryEvent:
		return true
	default:
		return false
	}
}

// Gallery gallery items, ordered by Order ascending on the public page
type Gallery struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image" json:"image"`
	Category    GalleryCategory    `bson:"category" json:"category"`
	Featured    bool               `bson:"featured" json:"featured"`
	// Order display sequence, ascending
	Order int `bson:"order" json:"order"`
	// Published whether the item appears in the public gallery
	Published bool `bson:"published" json:"published"`
}

// Validate check required fields and enum membership
func (g *Gallery) Validate() error {
	if g.Title == "" {
		return errors.Wrap(ErrInvalid, "title is required")
	}
	if g.Image == "" {
		return errors.Wrap(ErrInvalid, "image is required")
	}
	if !g.Category.Valid() {
		return errors.Wrapf(ErrInvalid, "unknown category %q", g.Category)
	}

	return nil
}
