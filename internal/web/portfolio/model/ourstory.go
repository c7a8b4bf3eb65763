package model

import (
	"time"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OurStorySection section of the "our story" page
type OurStorySection string

const (
	OurStorySectionIntroduction OurStorySection = "Introduction"
	OurStorySectionJourney      OurStorySection = "Journey"
	OurStorySectionMission      OurStorySection = "Mission"
	OurStorySectionFuture       OurStorySection = "Future"
)

// Valid whether the section is one of the known values
func (s OurStorySection) Valid() bool {
	switch s {
	case OurStorySectionIntroduction, OurStorySectionJourney,
		OurStorySectionMission, OurStorySectionFuture:
		return true
	default:
		return false
	}
}

// OurStory narrative blocks of the "our story" page, ordered by Order ascending
type OurStory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Section   OurStorySection    `bson:"section" json:"section"`
	Order     int                `bson:"order" json:"order"`
	Published bool               `bson:"published" json:"published"`
}

// Validate check required fields and enum membership
func (o *OurStory) Validate() error {
	if o.Title == "" {
		return errors.Wrap(ErrInvalid, "title is required")
	}
	if o.Content == "" {
		return errors.Wrap(ErrInvalid, "content is required")
	}
	if !o.Section.Valid() {
		return errors.Wrapf(ErrInvalid, "unknown section %q", o.Section)
	}

	return nil
}
