package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// sortCreatedDesc newest documents first, the default listing order.
func sortCreatedDesc() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

// ListBlogs load blog posts matching the filter, newest first.
func (d *Portfolio) ListBlogs(ctx context.Context, f dto.BlogFilter) ([]*model.Blog, error) {
	query := bson.D{}
	if f.Category != nil {
		query = append(query, bson.E{Key: "category", Value: *f.Category})
	}
	if f.Published != nil {
		query = append(query, bson.E{Key: "published", Value: *f.Published})
	}

	return findAll[model.Blog](ctx, d.GetBlogsCol(), query, sortCreatedDesc())
}

// GetBlogBySlug load one blog post by slug. When publishedOnly is set,
// unpublished posts count as absent.
func (d *Portfolio) GetBlogBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Blog, error) {
	query := bson.D{{Key: "slug", Value: slug}}
	if publishedOnly {
		query = append(query, bson.E{Key: "published", Value: true})
	}

	return findOne[model.Blog](ctx, d.GetBlogsCol(), query)
}

// GetBlogByID load one blog post by id.
func (d *Portfolio) GetBlogByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	return getByID[model.Blog](ctx, d.GetBlogsCol(), id)
}

// CreateBlog insert a blog post.
func (d *Portfolio) CreateBlog(ctx context.Context, b *model.Blog) error {
	return insertOne(ctx, d.GetBlogsCol(), b)
}

// UpdateBlog apply a partial update and return the updated post.
func (d *Portfolio) UpdateBlog(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Blog, error) {
	return updateByID[model.Blog](ctx, d.GetBlogsCol(), id, set)
}

// DeleteBlog remove a blog post.
func (d *Portfolio) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, d.GetBlogsCol(), id)
}

// ListCaseStudies load case studies matching the filter, newest first.
func (d *Portfolio) ListCaseStudies(ctx context.Context, f dto.CaseStudyFilter) ([]*model.CaseStudy, error) {
	query := bson.D{}
	if f.Category != nil {
		query = append(query, bson.E{Key: "category", Value: *f.Category})
	}
	if f.Featured != nil {
		query = append(query, bson.E{Key: "featured", Value: *f.Featured})
	}

	return findAll[model.CaseStudy](ctx, d.GetCaseStudiesCol(), query, sortCreatedDesc())
}

// GetCaseStudyBySlug load one case study by slug.
func (d *Portfolio) GetCaseStudyBySlug(ctx context.Context, slug string) (*model.CaseStudy, error) {
	return findOne[model.CaseStudy](ctx, d.GetCaseStudiesCol(), bson.D{{Key: "slug", Value: slug}})
}

// GetCaseStudyByID load one case study by id.
func (d *Portfolio) GetCaseStudyByID(ctx context.Context, id primitive.ObjectID) (*model.CaseStudy, error) {
	return getByID[model.CaseStudy](ctx, d.GetCaseStudiesCol(), id)
}

// CreateCaseStudy insert a case study.
func (d *Portfolio) CreateCaseStudy(ctx context.Context, cs *model.CaseStudy) error {
	return insertOne(ctx, d.GetCaseStudiesCol(), cs)
}

// UpdateCaseStudy apply a partial update and return the updated case study.
func (d *Portfolio) UpdateCaseStudy(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.CaseStudy, error) {
	return updateByID[model.CaseStudy](ctx, d.GetCaseStudiesCol(), id, set)
}

// DeleteCaseStudy remove a case study.
func (d *Portfolio) DeleteCaseStudy(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, d.GetCaseStudiesCol(), id)
}
