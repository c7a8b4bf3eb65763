package dto

import (
	"time"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// Update DTOs carry partial payloads for PUT endpoints. Nil fields are
// left untouched; every update bumps updated_at.

// setField appends a $set entry when the pointer is non-nil.
func setField[T any](set bson.D, key string, val *T) bson.D {
	if val == nil {
		return set
	}

	return append(set, bson.E{Key: key, Value: *val})
}

// BlogUpdate partial blog payload
type BlogUpdate struct {
	Title      *string             `json:"title"`
	Slug       *string             `json:"slug"`
	Excerpt    *string             `json:"excerpt"`
	Content    *string             `json:"content"`
	CoverImage *string             `json:"cover_image"`
	Tags       *[]string           `json:"tags"`
	Category   *model.BlogCategory `json:"category"`
	Published  *bool               `json:"published"`
	ReadTime   *int                `json:"read_time"`
}

// Validate reject invalid enum values and empty required fields
func (u *BlogUpdate) Validate() error {
	if u.Category != nil && !u.Category.Valid() {
		return errors.Wrapf(model.ErrInvalid, "unknown category %q", *u.Category)
	}
	if u.Title != nil && *u.Title == "" {
		return errors.Wrap(model.ErrInvalid, "title must not be empty")
	}
	if u.Slug != nil && *u.Slug == "" {
		return errors.Wrap(model.ErrInvalid, "slug must not be empty")
	}
	if u.ReadTime != nil && *u.ReadTime < 0 {
		return errors.Wrap(model.ErrInvalid, "read_time must not be negative")
	}

	return nil
}

// Set build the $set document
func (u *BlogUpdate) Set(now time.Time) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}
	set = setField(set, "title", u.Title)
	set = setField(set, "slug", u.Slug)
	set = setField(set, "excerpt", u.Excerpt)
	set = setField(set, "content", u.Content)
	set = setField(set, "cover_image", u.CoverImage)
	set = setField(set, "tags", u.Tags)
	set = setField(set, "category", u.Category)
	set = setField(set, "published", u.Published)
	set = setField(set, "read_time", u.ReadTime)
	return set
}

// ProjectUpdate partial project payload
type ProjectUpdate struct {
	Title           *string                `json:"title"`
	Description     *string                `json:"description"`
	LongDescription *string                `json:"long_description"`
	Technologies    *[]string              `json:"technologies"`
	Category        *model.ProjectCategory `json:"category"`
	Images          *[]string              `json:"images"`
	GithubURL       *string                `json:"github_url"`
	LiveURL         *string                `json:"live_url"`
	Featured        *bool                  `json:"featured"`
	Status          *model.ProjectStatus   `json:"status"`
}

// Validate reject invalid enum values and empty required fields
func (u *ProjectUpdate) Validate() error {
	if u.Category != nil && !u.Category.Valid() {
		return errors.Wrapf(model.ErrInvalid, "unknown category %q", *u.Category)
	}
	if u.Status != nil && !u.Status.Valid() {
		return errors.Wrapf(model.ErrInvalid, "unknown status %q", *u.Status)
	}
	if u.Title != nil && *u.Title == "" {
		return errors.Wrap(model.ErrInvalid, "title must not be empty")
	}

	return nil
}

// Set build the $set document
func (u *ProjectUpdate) Set(now time.Time) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}
	set = setField(set, "title", u.Title)
	set = setField(set, "description", u.Description)
	set = setField(set, "long_description", u.LongDescription)
	set = setField(set, "technologies", u.Technologies)
	set = setField(set, "category", u.Category)
	set = setField(set, "images", u.Images)
	set = setField(set, "github_url", u.GithubURL)
	set = setField(set, "live_url", u.LiveURL)
	set = setField(set, "featured", u.Featured)
	set = setField(set, "status", u.Status)
	return set
}

// CaseStudyUpdate partial case study payload
type CaseStudyUpdate struct {
	Title        *string                  `json:"title"`
	Slug         *string                  `json:"slug"`
	Client       *string                  `json:"client"`
	Duration     *string                  `json:"duration"`
	Overview     *string                  `json:"overview"`
	Challenge    *string                  `json:"challenge"`
	Solution     *string                  `json:"solution"`
	Results      *string                  `json:"results"`
	Technologies *[]string                `json:"technologies"`
	Images       *[]string                `json:"images"`
	Category     *model.CaseStudyCategory `json:"category"`
	Featured     *bool                    `json:"featured"`
}

// Validate reject invalid enum values and empty required fields
func (u *CaseStudyUpdate) Validate() error {
	if u.Category != nil && !u.Category.Valid() {
		return errors.Wrapf(model.ErrInvalid, "unknown category %q", *u.Category)
	}
	if u.Title != nil && *u.Title == "" {
		return errors.Wrap(model.ErrInvalid, "title must not be empty")
	}
	if u.Slug != nil && *u.Slug == "" {
		return errors.Wrap(model.ErrInvalid, "slug must not be empty")
	}

	return nil
}

// Set build the $set document
func (u *CaseStudyUpdate) Set(now time.Time) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}
	set = setField(set, "title", u.Title)
	set = setField(set, "slug", u.Slug)
	set = setField(set, "client", u.Client)
	set = setField(set, "duration", u.Duration)
	set = setField(set, "overview", u.Overview)
	set = setField(set, "challenge", u.Challenge)
	set = setField(set, "solution", u.Solution)
	set = setField(set, "results", u.Results)
	set = setField(set, "technologies", u.Technologies)
	set = setField(set, "images", u.Images)
	set = setField(set, "category", u.Category)
	set = setField(set, "featured", u.Featured)
	return set
}

// GalleryUpdate partial gallery payload
type GalleryUpdate struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Image       *string                `json:"image"`
	Category    *model.GalleryCategory `json:"category"`
	Featured    *bool                  `json:"featured"`
	Order       *int                   `json:"order"`
	Published   *bool                  `json:"published"`
}

// Validate reject invalid enum values and empty required fields
func (u *GalleryUpdate) Validate() error {
	if u.Category != nil && !u.Category.Valid() {
		return errors.Wrapf(model.ErrInvalid, "unknown category %q", *u.Category)
	}
	if u.Title != nil && *u.Title == "" {
		return errors.Wrap(model.ErrInvalid, "title must not be empty")
	}
	if u.Image != nil && *u.Image == "" {
		return errors.Wrap(model.ErrInvalid, "image must not be empty")
	}

	return nil
}

// Set build the $set document
func (u *GalleryUpdate) Set(now time.Time) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}
	set = setField(set, "title", u.Title)
	set = setField(set, "description", u.Description)
	set = setField(set, "image", u.Image)
	set = setField(set, "category", u.Category)
	set = setField(set, "featured", u.Featured)
	set = setField(set, "order", u.Order)
	set = setField(set, "published", u.Published)
	return set
}

// OurStoryUpdate partial our-story payload
type OurStoryUpdate struct {
	Title     *string                `json:"title"`
	Content   *string                `json:"content"`
	Section   *model.OurStorySection `json:"section"`
	Order     *int                   `json:"order"`
	Published *bool                  `json:"published"`
}

// Validate reject invalid enum values and empty required fields
func (u *OurStoryUpdate) Validate() error {
	if u.Section != nil && !u.Section.Valid() {
		return errors.Wrapf(model.ErrInvalid, "unknown section %q", *u.Section)
	}
	if u.Title != nil && *u.Title == "" {
		return errors.Wrap(model.ErrInvalid, "title must not be empty")
	}

	return nil
}

// Set build the $set document
func (u *OurStoryUpdate) Set(now time.Time) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}
	set = setField(set, "title", u.Title)
	set = setField(set, "content", u.Content)
	set = setField(set, "section", u.Section)
	set = setField(set, "order", u.Order)
	set = setField(set, "published", u.Published)
	return set
}

// SuccessStoryUpdate partial success story payload
type SuccessStoryUpdate struct {
	Title       *string                     `json:"title"`
	Description *string                     `json:"description"`
	Metric      *string                     `json:"metric"`
	Icon        *string                     `json:"icon"`
	Category    *model.SuccessStoryCategory `json:"category"`
	// ProjectID hex id of the referenced project; an empty string is
	// ignored, it does not clear the reference
	ProjectID *string `json:"project_id"`
}

// Validate reject invalid enum values, empty required fields, and
// malformed project references
func (u *SuccessStoryUpdate) Validate() error {
	if u.Category != nil && !u.Category.Valid() {
		return errors.Wrapf(model.ErrInvalid, "unknown category %q", *u.Category)
	}
	if u.Title != nil && *u.Title == "" {
		return errors.Wrap(model.ErrInvalid, "title must not be empty")
	}
	if u.ProjectID != nil && *u.ProjectID != "" {
		if _, err := primitive.ObjectIDFromHex(*u.ProjectID); err != nil {
			return errors.Wrapf(model.ErrInvalid, "malformed project_id %q", *u.ProjectID)
		}
	}

	return nil
}

// Set build the $set document
func (u *SuccessStoryUpdate) Set(now time.Time) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}
	set = setField(set, "title", u.Title)
	set = setField(set, "description", u.Description)
	set = setField(set, "metric", u.Metric)
	set = setField(set, "icon", u.Icon)
	set = setField(set, "category", u.Category)
	if u.ProjectID != nil && *u.ProjectID != "" {
		// validated in Validate
		oid, _ := primitive.ObjectIDFromHex(*u.ProjectID)
		set = append(set, bson.E{Key: "project_id", Value: oid})
	}
	return set
}

// TechnologyUpdate partial technology payload
type TechnologyUpdate struct {
	Name              *string                   `json:"name"`
	Category          *model.TechnologyCategory `json:"category"`
	Proficiency       *int                      `json:"proficiency"`
	Icon              *string                   `json:"icon"`
	Description       *string                   `json:"description"`
	YearsOfExperience *int                      `json:"years_of_experience"`
}

// Validate reject invalid enum values, empty required fields, and
// out-of-range proficiency
func (u *TechnologyUpdate) Validate() error {
	if u.Category != nil && !u.Category.Valid() {
		return errors.Wrapf(model.ErrInvalid, "unknown category %q", *u.Category)
	}
	if u.Name != nil && *u.Name == "" {
		return errors.Wrap(model.ErrInvalid, "name must not be empty")
	}
	if u.Proficiency != nil && (*u.Proficiency < 1 || *u.Proficiency > 10) {
		return errors.Wrapf(model.ErrInvalid, "proficiency %d out of range [1, 10]", *u.Proficiency)
	}

	return nil
}

// Set build the $set document
func (u *TechnologyUpdate) Set(now time.Time) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}
	set = setField(set, "name", u.Name)
	set = setField(set, "category", u.Category)
	set = setField(set, "proficiency", u.Proficiency)
	set = setField(set, "icon", u.Icon)
	set = setField(set, "description", u.Description)
	set = setField(set, "years_of_experience", u.YearsOfExperience)
	return set
}

// ContactUpdate admin triage payload. Message content is immutable, only
// the triage fields can change.
type ContactUpdate struct {
	Status  *model.ContactStatus `json:"status"`
	Replied *bool                `json:"replied"`
}

// Validate reject invalid enum values
func (u *ContactUpdate) Validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return errors.Wrapf(model.ErrInvalid, "unknown status %q", *u.Status)
	}

	return nil
}

// Set build the $set document
func (u *ContactUpdate) Set(now time.Time) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}
	set = setField(set, "status", u.Status)
	set = setField(set, "replied", u.Replied)
	return set
}
