package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// ListProjects load projects matching the filter, newest first.
func (d *Portfolio) ListProjects(ctx context.Context, f dto.ProjectFilter) ([]*model.Project, error) {
	query := bson.D{}
	if f.Category != nil {
		query = append(query, bson.E{Key: "category", Value: *f.Category})
	}
	if f.Featured != nil {
		query = append(query, bson.E{Key: "featured", Value: *f.Featured})
	}

	return findAll[model.Project](ctx, d.GetProjectsCol(), query, sortCreatedDesc())
}

// GetProjectByID load one project by id.
func (d *Portfolio) GetProjectByID(ctx context.Context, id primitive.ObjectID) (*model.Project, error) {
	return getByID[model.Project](ctx, d.GetProjectsCol(), id)
}

// CreateProject insert a project.
func (d *Portfolio) CreateProject(ctx context.Context, p *model.Project) error {
	return insertOne(ctx, d.GetProjectsCol(), p)
}

// UpdateProject apply a partial update and return the updated project.
func (d *Portfolio) UpdateProject(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Project, error) {
	return updateByID[model.Project](ctx, d.GetProjectsCol(), id, set)
}

// DeleteProject remove a project.
func (d *Portfolio) DeleteProject(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, d.GetProjectsCol(), id)
}

// ListSuccessStories load success stories matching the filter, newest first.
func (d *Portfolio) ListSuccessStories(ctx context.Context, f dto.SuccessStoryFilter) ([]*model.SuccessStory, error) {
	query := bson.D{}
	if f.Category != nil {
		query = append(query, bson.E{Key: "category", Value: *f.Category})
	}

	return findAll[model.SuccessStory](ctx, d.GetSuccessStoriesCol(), query, sortCreatedDesc())
}

// GetSuccessStoryByID load one success story by id.
func (d *Portfolio) GetSuccessStoryByID(ctx context.Context, id primitive.ObjectID) (*model.SuccessStory, error) {
	return getByID[model.SuccessStory](ctx, d.GetSuccessStoriesCol(), id)
}

// CreateSuccessStory insert a success story.
func (d *Portfolio) CreateSuccessStory(ctx context.Context, s *model.SuccessStory) error {
	return insertOne(ctx, d.GetSuccessStoriesCol(), s)
}

// UpdateSuccessStory apply a partial update and return the updated story.
func (d *Portfolio) UpdateSuccessStory(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.SuccessStory, error) {
	return updateByID[model.SuccessStory](ctx, d.GetSuccessStoriesCol(), id, set)
}

// DeleteSuccessStory remove a success story.
func (d *Portfolio) DeleteSuccessStory(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, d.GetSuccessStoriesCol(), id)
}

// ListTechnologies load technologies matching the filter, strongest
// proficiency first, then name.
func (d *Portfolio) ListTechnologies(ctx context.Context, f dto.TechnologyFilter) ([]*model.Technology, error) {
	query := bson.D{}
	if f.Category != nil {
		query = append(query, bson.E{Key: "category", Value: *f.Category})
	}

	return findAll[model.Technology](ctx, d.GetTechnologiesCol(), query,
		options.Find().SetSort(bson.D{
			{Key: "proficiency", Value: -1},
			{Key: "name", Value: 1},
		}))
}

// GetTechnologyByID load one technology by id.
func (d *Portfolio) GetTechnologyByID(ctx context.Context, id primitive.ObjectID) (*model.Technology, error) {
	return getByID[model.Technology](ctx, d.GetTechnologiesCol(), id)
}

// CreateTechnology insert a technology.
func (d *Portfolio) CreateTechnology(ctx context.Context, t *model.Technology) error {
	return insertOne(ctx, d.GetTechnologiesCol(), t)
}

// UpdateTechnology apply a partial update and return the updated technology.
func (d *Portfolio) UpdateTechnology(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Technology, error) {
	return updateByID[model.Technology](ctx, d.GetTechnologiesCol(), id, set)
}

// DeleteTechnology remove a technology.
func (d *Portfolio) DeleteTechnology(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, d.GetTechnologiesCol(), id)
}
