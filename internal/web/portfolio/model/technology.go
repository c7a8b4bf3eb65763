package model

import (
	"time"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TechnologyCategory technology category
type TechnologyCategory string

const (
	TechnologyCategoryLanguage  TechnologyCategory = "Programming Language"
	TechnologyCategoryFramework TechnologyCategory = "Framework"
	TechnologyCategoryDatabase  TechnologyCategory = "Database"
	TechnologyCategoryTool      TechnologyCategory = "Tool"
	TechnologyCategoryCloud     TechnologyCategory = "Cloud Service"
)

// Valid whether the category is one of the known values
func (c TechnologyCategory) Valid() bool {
	switch c {
	case TechnologyCategoryLanguage, TechnologyCategoryFramework,
		TechnologyCategoryDatabase, TechnologyCategoryTool, TechnologyCategoryCloud:
		return true
	default:
		return false
	}
}

// Technology entries on the skills page
type Technology struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Name      string             `bson:"name" json:"name"`
	Category  TechnologyCategory `bson:"category" json:"category"`
	// Proficiency self-assessed skill level, bounded [1, 10]
	Proficiency       int    `bson:"proficiency" json:"proficiency"`
	Icon              string `bson:"icon,omitempty" json:"icon,omitempty"`
	Description       string `bson:"description,omitempty" json:"description,omitempty"`
	YearsOfExperience int    `bson:"years_of_experience" json:"years_of_experience"`
}

// Validate check required fields, enum membership, and proficiency bounds
func (t *Technology) Validate() error {
	if t.Name == "" {
		return errors.Wrap(ErrInvalid, "name is required")
	}
	if !t.Category.Valid() {
		return errors.Wrapf(ErrInvalid, "unknown category %q", t.Category)
	}
	if t.Proficiency < 1 || t.Proficiency > 10 {
		return errors.Wrapf(ErrInvalid, "proficiency %d out of range [1, 10]", t.Proficiency)
	}
	if t.YearsOfExperience < 0 {
		return errors.Wrap(ErrInvalid, "years_of_experience must not be negative")
	}

	return nil
}
