package model

import (
	"time"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuccessStoryCategory success story category
type SuccessStoryCategory string

const (
	SuccessStoryCategoryPerformance   SuccessStoryCategory = "Performance"
	SuccessStoryCategoryCostReduction SuccessStoryCategory = "Cost Reduction"
	SuccessStoryCategoryUserGrowth    SuccessStoryCategory = "User Growth"
	SuccessStoryCategoryEfficiency    SuccessStoryCategory = "Efficiency"
)

// Valid whether the category is one of the known values
func (c SuccessStoryCategory) Valid() bool {
	switch c {
	case SuccessStoryCategoryPerformance, SuccessStoryCategoryCostReduction,
		SuccessStoryCategoryUserGrowth, SuccessStoryCategoryEfficiency:
		return true
	default:
		return false
	}
}

// SuccessStory headline outcomes shown on the home page
type SuccessStory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	// Metric headline number, e.g. "300%"
	Metric   string               `bson:"metric" json:"metric"`
	Icon     string               `bson:"icon,omitempty" json:"icon,omitempty"`
	Category SuccessStoryCategory `bson:"category" json:"category"`
	// ProjectID informational back-reference to a project, not ownership
	ProjectID *primitive.ObjectID `bson:"project_id,omitempty" json:"project_id,omitempty"`
}

// Validate check required fields and enum membership
func (s *SuccessStory) Validate() error {
	if s.Title == "" {
		return errors.Wrap(ErrInvalid, "title is required")
	}
	if s.Description == "" {
		return errors.Wrap(ErrInvalid, "description is required")
	}
	if s.Metric == "" {
		return errors.Wrap(ErrInvalid, "metric is required")
	}
	if !s.Category.Valid() {
		return errors.Wrapf(ErrInvalid, "unknown category %q", s.Category)
	}

	return nil
}
