package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// Natural-key lookups used by the bootstrap path to keep seeding
// idempotent.

// GetProjectByTitle load one project by title.
func (d *Portfolio) GetProjectByTitle(ctx context.Context, title string) (*model.Project, error) {
	return findOne[model.Project](ctx, d.GetProjectsCol(), bson.D{{Key: "title", Value: title}})
}

// GetTechnologyByName load one technology by name.
func (d *Portfolio) GetTechnologyByName(ctx context.Context, name string) (*model.Technology, error) {
	return findOne[model.Technology](ctx, d.GetTechnologiesCol(), bson.D{{Key: "name", Value: name}})
}

// GetSuccessStoryByTitle load one success story by title.
func (d *Portfolio) GetSuccessStoryByTitle(ctx context.Context, title string) (*model.SuccessStory, error) {
	return findOne[model.SuccessStory](ctx, d.GetSuccessStoriesCol(), bson.D{{Key: "title", Value: title}})
}

// GetOurStoryByTitle load one story section by title.
func (d *Portfolio) GetOurStoryByTitle(ctx context.Context, title string) (*model.OurStory, error) {
	return findOne[model.OurStory](ctx, d.GetOurStoryCol(), bson.D{{Key: "title", Value: title}})
}

// GetGalleryByTitle load one gallery item by title.
func (d *Portfolio) GetGalleryByTitle(ctx context.Context, title string) (*model.Gallery, error) {
	return findOne[model.Gallery](ctx, d.GetGalleryCol(), bson.D{{Key: "title", Value: title}})
}
