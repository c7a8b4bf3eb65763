package model

import (
	"time"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CaseStudyCategory case study category
type CaseStudyCategory string

const (
	CaseStudyCategoryAIML      CaseStudyCategory = "AI/ML"
	CaseStudyCategoryBackend   CaseStudyCategory = "Backend"
	CaseStudyCategoryFullStack CaseStudyCategory = "Full Stack"
)

// Valid whether the category is one of the known values
func (c CaseStudyCategory) Valid() bool {
	switch c {
	case CaseStudyCategoryAIML, CaseStudyCategoryBackend, CaseStudyCategoryFullStack:
		return true
	default:
		return false
	}
}

// CaseStudy client case studies
type CaseStudy struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Title     string             `bson:"title" json:"title"`
	// Slug unique URL-safe identifier, derived from title when absent
	Slug string `bson:"slug" json:"slug"`
	// Client client name, optional
	Client string `bson:"client,omitempty" json:"client,omitempty"`
	// Duration engagement duration, e.g. "3 months"
	Duration     string            `bson:"duration,omitempty" json:"duration,omitempty"`
	Overview     string            `bson:"overview" json:"overview"`
	Challenge    string            `bson:"challenge" json:"challenge"`
	Solution     string            `bson:"solution" json:"solution"`
	Results      string            `bson:"results" json:"results"`
	Technologies []string          `bson:"technologies" json:"technologies"`
	Images       []string          `bson:"images" json:"images"`
	Category     CaseStudyCategory `bson:"category" json:"category"`
	Featured     bool              `bson:"featured" json:"featured"`
}

// Validate check required fields and enum membership
func (c *CaseStudy) Validate() error {
	if c.Title == "" {
		return errors.Wrap(ErrInvalid, "title is required")
	}
	if c.Slug == "" {
		return errors.Wrap(ErrInvalid, "slug is required")
	}
	if c.Overview == "" {
		return errors.Wrap(ErrInvalid, "overview is required")
	}
	if c.Challenge == "" {
		return errors.Wrap(ErrInvalid, "challenge is required")
	}
	if c.Solution == "" {
		return errors.Wrap(ErrInvalid, "solution is required")
	}
	if c.Results == "" {
		return errors.Wrap(ErrInvalid, "results is required")
	}
	if !c.Category.Valid() {
		return errors.Wrapf(ErrInvalid, "unknown category %q", c.Category)
	}

	return nil
}
