package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// ListBlogs load blog posts matching the filter, served from cache when warm.
func (s *Portfolio) ListBlogs(ctx context.Context, f dto.BlogFilter) ([]*model.Blog, error) {
	key := cacheKey("blogs", f)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*model.Blog), nil
	}

	blogs, err := s.dao.ListBlogs(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list blogs")
	}

	s.cache.SetDefault(key, blogs)
	return blogs, nil
}

// GetPublishedBlog load one published post by slug, with rendered content.
func (s *Portfolio) GetPublishedBlog(ctx context.Context, slug string) (*model.Blog, error) {
	b, err := s.dao.GetBlogBySlug(ctx, slug, true)
	if err != nil {
		return nil, errors.Wrapf(err, "get blog %q", slug)
	}

	b.RenderedContent = RenderMarkdown(b.Content)
	return b, nil
}

// GetBlogByID load one post by id regardless of publish state.
func (s *Portfolio) GetBlogByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	b, err := s.dao.GetBlogByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get blog `%s`", id.Hex())
	}

	return b, nil
}

// CreateBlog persist a new post. The slug is derived from the title when
// absent, the read time from the content word count when unset.
func (s *Portfolio) CreateBlog(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	if b.Slug == "" {
		b.Slug = Slugify(b.Title)
	}
	if b.ReadTime == 0 {
		b.ReadTime = DeriveReadTime(b.Content)
	}

	now := gutils.Clock.GetUTCNow()
	b.ID = primitive.NewObjectID()
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.dao.CreateBlog(ctx, b); err != nil {
		return nil, errors.Wrapf(err, "create blog %q", b.Slug)
	}

	s.flushCache()
	s.logger.Info("created blog", zap.String("slug", b.Slug))
	return b, nil
}

// UpdateBlog apply a partial update to one post.
func (s *Portfolio) UpdateBlog(ctx context.Context, id primitive.ObjectID, u *dto.BlogUpdate) (*model.Blog, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	b, err := s.dao.UpdateBlog(ctx, id, u.Set(gutils.Clock.GetUTCNow()))
	if err != nil {
		return nil, errors.Wrapf(err, "update blog `%s`", id.Hex())
	}

	s.flushCache()
	return b, nil
}

// DeleteBlog remove one post.
func (s *Portfolio) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	if err := s.dao.DeleteBlog(ctx, id); err != nil {
		return errors.Wrapf(err, "delete blog `%s`", id.Hex())
	}

	s.flushCache()
	s.logger.Info("deleted blog", zap.String("id", id.Hex()))
	return nil
}
