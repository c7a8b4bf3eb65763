// Package model contains the document schemas of the portfolio site.
package model

import (
	"time"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogCategory blog post category
type BlogCategory string

const (
	BlogCategoryAIML       BlogCategory = "AI/ML"
	BlogCategoryBackend    BlogCategory = "Backend"
	BlogCategoryFullStack  BlogCategory = "Full Stack"
	BlogCategoryTechnology BlogCategory = "Technology"
	BlogCategoryCareer     BlogCategory = "Career"
)

// Valid whether the category is one of the known values
func (c BlogCategory) Valid() bool {
	switch c {
	case BlogCategoryAIML, BlogCategoryBackend, BlogCategoryFullStack,
		BlogCategoryTechnology, BlogCategoryCareer:
		return true
	default:
		return false
	}
}

// Blog blog posts
type Blog struct {
	// ID unique identifier for the post
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// CreatedAt time when the post was created
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	// UpdatedAt time when the post was last modified
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	// Title title of the post
	Title string `bson:"title" json:"title"`
	// Slug unique URL-safe identifier, derived from title when absent
	Slug string `bson:"slug" json:"slug"`
	// Excerpt short summary shown in listings
	Excerpt string `bson:"excerpt" json:"excerpt"`
	// Content markdown source of the post
	Content string `bson:"content" json:"content"`
	// RenderedContent content rendered to HTML, set on detail responses only
	RenderedContent string `bson:"-" json:"rendered_content,omitempty"`
	// CoverImage optional cover image URL
	CoverImage string `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	// Tags free-form tags
	Tags []string `bson:"tags" json:"tags"`
	// Category category of the post
	Category BlogCategory `bson:"category" json:"category"`
	// Published whether the post is publicly visible
	Published bool `bson:"published" json:"published"`
	// ReadTime estimated reading time in minutes
	ReadTime int `bson:"read_time" json:"read_time"`
}

// Validate check required fields and enum membership
func (b *Blog) Validate() error {
	if b.Title == "" {
		return errors.Wrap(ErrInvalid, "title is required")
	}
	if b.Slug == "" {
		return errors.Wrap(ErrInvalid, "slug is required")
	}
	if b.Excerpt == "" {
		return errors.Wrap(ErrInvalid, "excerpt is required")
	}
	if b.Content == "" {
		return errors.Wrap(ErrInvalid, "content is required")
	}
	if !b.Category.Valid() {
		return errors.Wrapf(ErrInvalid, "unknown category %q", b.Category)
	}
	if b.ReadTime < 0 {
		return errors.Wrap(ErrInvalid, "read_time must not be negative")
	}

	return nil
}
