package model

import (
	"time"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectCategory project category
type ProjectCategory string

const (
	ProjectCategoryAIML      ProjectCategory = "AI/ML"
	ProjectCategoryBackend   ProjectCategory = "Backend"
	ProjectCategoryFullStack ProjectCategory = "Full Stack"
	ProjectCategoryMobile    ProjectCategory = "Mobile"
)

// Valid whether the category is one of the known values
func (c ProjectCategory) Valid() bool {
	switch c {
	case ProjectCategoryAIML, ProjectCategoryBackend,
		ProjectCategoryFullStack, ProjectCategoryMobile:
		return true
	default:
		return false
	}
}

// ProjectStatus project delivery status
type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusPlanned    ProjectStatus = "planned"
)

// Valid whether the status is one of the known values
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusInProgress, ProjectStatusPlanned:
		return true
	default:
		return false
	}
}

// Project portfolio projects
type Project struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Title     string             `bson:"title" json:"title"`
	// Description short summary shown in listings
	Description string `bson:"description" json:"description"`
	// LongDescription full write-up shown on the detail page
	LongDescription string          `bson:"long_description,omitempty" json:"long_description,omitempty"`
	Technologies    []string        `bson:"technologies" json:"technologies"`
	Category        ProjectCategory `bson:"category" json:"category"`
	Images          []string        `bson:"images" json:"images"`
	GithubURL       string          `bson:"github_url,omitempty" json:"github_url,omitempty"`
	LiveURL         string          `bson:"live_url,omitempty" json:"live_url,omitempty"`
	Featured        bool            `bson:"featured" json:"featured"`
	Status          ProjectStatus   `bson:"status" json:"status"`
}

// Validate check required fields and enum membership
func (p *Project) Validate() error {
	if p.Title == "" {
		return errors.Wrap(ErrInvalid, "title is required")
	}
	if p.Description == "" {
		return errors.Wrap(ErrInvalid, "description is required")
	}
	if !p.Category.Valid() {
		return errors.Wrapf(ErrInvalid, "unknown category %q", p.Category)
	}
	if !p.Status.Valid() {
		return errors.Wrapf(ErrInvalid, "unknown status %q", p.Status)
	}

	return nil
}
