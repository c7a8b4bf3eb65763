package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
)

func countAll(ctx context.Context, col *mongoLib.Collection) (int64, error) {
	n, err := col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrapf(err, "count %q", col.Name())
	}

	return n, nil
}

// CountBlogs count all blog posts.
func (d *Portfolio) CountBlogs(ctx context.Context) (int64, error) {
	return countAll(ctx, d.GetBlogsCol())
}

// CountProjects count all projects.
func (d *Portfolio) CountProjects(ctx context.Context) (int64, error) {
	return countAll(ctx, d.GetProjectsCol())
}

// CountCaseStudies count all case studies.
func (d *Portfolio) CountCaseStudies(ctx context.Context) (int64, error) {
	return countAll(ctx, d.GetCaseStudiesCol())
}

// CountContacts count all contact messages.
func (d *Portfolio) CountContacts(ctx context.Context) (int64, error) {
	return countAll(ctx, d.GetContactsCol())
}

// CountTechnologies count all technologies.
func (d *Portfolio) CountTechnologies(ctx context.Context) (int64, error) {
	return countAll(ctx, d.GetTechnologiesCol())
}

// CountGallery count all gallery items.
func (d *Portfolio) CountGallery(ctx context.Context) (int64, error) {
	return countAll(ctx, d.GetGalleryCol())
}
