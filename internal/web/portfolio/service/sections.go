package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// Gallery, our-story, success-story, and technology operations share the
// same thin shape: validate, delegate, drop the public cache on writes.

// ListGallery load gallery items matching the filter.
func (s *Portfolio) ListGallery(ctx context.Context, f dto.GalleryFilter) ([]*model.Gallery, error) {
	key := cacheKey("gallery", f)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*model.Gallery), nil
	}

	items, err := s.dao.ListGallery(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list gallery")
	}

	s.cache.SetDefault(key, items)
	return items, nil
}

// GetGalleryByID load one gallery item by id.
func (s *Portfolio) GetGalleryByID(ctx context.Context, id primitive.ObjectID) (*model.Gallery, error) {
	g, err := s.dao.GetGalleryByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get gallery item `%s`", id.Hex())
	}

	return g, nil
}

// CreateGallery persist a new gallery item, published by default.
func (s *Portfolio) CreateGallery(ctx context.Context, g *model.Gallery, publishedSet bool) (*model.Gallery, error) {
	if !publishedSet {
		g.Published = true
	}

	now := gutils.Clock.GetUTCNow()
	g.ID = primitive.NewObjectID()
	g.CreatedAt = now
	g.UpdatedAt = now

	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := s.dao.CreateGallery(ctx, g); err != nil {
		return nil, errors.Wrapf(err, "create gallery item %q", g.Title)
	}

	s.flushCache()
	return g, nil
}

// UpdateGallery apply a partial update to one gallery item.
func (s *Portfolio) UpdateGallery(ctx context.Context, id primitive.ObjectID, u *dto.GalleryUpdate) (*model.Gallery, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	g, err := s.dao.UpdateGallery(ctx, id, u.Set(gutils.Clock.GetUTCNow()))
	if err != nil {
		return nil, errors.Wrapf(err, "update gallery item `%s`", id.Hex())
	}

	s.flushCache()
	return g, nil
}

// DeleteGallery remove one gallery item.
func (s *Portfolio) DeleteGallery(ctx context.Context, id primitive.ObjectID) error {
	if err := s.dao.DeleteGallery(ctx, id); err != nil {
		return errors.Wrapf(err, "delete gallery item `%s`", id.Hex())
	}

	s.flushCache()
	return nil
}

// ListOurStory load story sections matching the filter.
func (s *Portfolio) ListOurStory(ctx context.Context, f dto.OurStoryFilter) ([]*model.OurStory, error) {
	key := cacheKey("our_story", f)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*model.OurStory), nil
	}

	sections, err := s.dao.ListOurStory(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list our story")
	}

	s.cache.SetDefault(key, sections)
	return sections, nil
}

// GetOurStoryByID load one story section by id.
func (s *Portfolio) GetOurStoryByID(ctx context.Context, id primitive.ObjectID) (*model.OurStory, error) {
	o, err := s.dao.GetOurStoryByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get story section `%s`", id.Hex())
	}

	return o, nil
}

// CreateOurStory persist a new story section, published by default.
func (s *Portfolio) CreateOurStory(ctx context.Context, o *model.OurStory, publishedSet bool) (*model.OurStory, error) {
	if !publishedSet {
		o.Published = true
	}

	now := gutils.Clock.GetUTCNow()
	o.ID = primitive.NewObjectID()
	o.CreatedAt = now
	o.UpdatedAt = now

	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := s.dao.CreateOurStory(ctx, o); err != nil {
		return nil, errors.Wrapf(err, "create story section %q", o.Title)
	}

	s.flushCache()
	return o, nil
}

// UpdateOurStory apply a partial update to one story section.
func (s *Portfolio) UpdateOurStory(ctx context.Context, id primitive.ObjectID, u *dto.OurStoryUpdate) (*model.OurStory, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	o, err := s.dao.UpdateOurStory(ctx, id, u.Set(gutils.Clock.GetUTCNow()))
	if err != nil {
		return nil, errors.Wrapf(err, "update story section `%s`", id.Hex())
	}

	s.flushCache()
	return o, nil
}

// DeleteOurStory remove one story section.
func (s *Portfolio) DeleteOurStory(ctx context.Context, id primitive.ObjectID) error {
	if err := s.dao.DeleteOurStory(ctx, id); err != nil {
		return errors.Wrapf(err, "delete story section `%s`", id.Hex())
	}

	s.flushCache()
	return nil
}

// ListSuccessStories load success stories matching the filter.
func (s *Portfolio) ListSuccessStories(ctx context.Context, f dto.SuccessStoryFilter) ([]*model.SuccessStory, error) {
	key := cacheKey("success_stories", f)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*model.SuccessStory), nil
	}

	stories, err := s.dao.ListSuccessStories(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list success stories")
	}

	s.cache.SetDefault(key, stories)
	return stories, nil
}

// GetSuccessStoryByID load one success story by id.
func (s *Portfolio) GetSuccessStoryByID(ctx context.Context, id primitive.ObjectID) (*model.SuccessStory, error) {
	st, err := s.dao.GetSuccessStoryByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get success story `%s`", id.Hex())
	}

	return st, nil
}

// CreateSuccessStory persist a new success story.
func (s *Portfolio) CreateSuccessStory(ctx context.Context, st *model.SuccessStory) (*model.SuccessStory, error) {
	now := gutils.Clock.GetUTCNow()
	st.ID = primitive.NewObjectID()
	st.CreatedAt = now
	st.UpdatedAt = now

	if err := st.Validate(); err != nil {
		return nil, err
	}
	if err := s.dao.CreateSuccessStory(ctx, st); err != nil {
		return nil, errors.Wrapf(err, "create success story %q", st.Title)
	}

	s.flushCache()
	return st, nil
}

// UpdateSuccessStory apply a partial update to one success story.
func (s *Portfolio) UpdateSuccessStory(ctx context.Context, id primitive.ObjectID, u *dto.SuccessStoryUpdate) (*model.SuccessStory, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	st, err := s.dao.UpdateSuccessStory(ctx, id, u.Set(gutils.Clock.GetUTCNow()))
	if err != nil {
		return nil, errors.Wrapf(err, "update success story `%s`", id.Hex())
	}

	s.flushCache()
	return st, nil
}

// DeleteSuccessStory remove one success story.
func (s *Portfolio) DeleteSuccessStory(ctx context.Context, id primitive.ObjectID) error {
	if err := s.dao.DeleteSuccessStory(ctx, id); err != nil {
		return errors.Wrapf(err, "delete success story `%s`", id.Hex())
	}

	s.flushCache()
	return nil
}

// ListTechnologies load technologies matching the filter.
func (s *Portfolio) ListTechnologies(ctx context.Context, f dto.TechnologyFilter) ([]*model.Technology, error) {
	key := cacheKey("technologies", f)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*model.Technology), nil
	}

	techs, err := s.dao.ListTechnologies(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list technologies")
	}

	s.cache.SetDefault(key, techs)
	return techs, nil
}

// GetTechnologyByID load one technology by id.
func (s *Portfolio) GetTechnologyByID(ctx context.Context, id primitive.ObjectID) (*model.Technology, error) {
	t, err := s.dao.GetTechnologyByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get technology `%s`", id.Hex())
	}

	return t, nil
}

// CreateTechnology persist a new technology. Years of experience defaults
// to one, matching the schema default.
func (s *Portfolio) CreateTechnology(ctx context.Context, t *model.Technology) (*model.Technology, error) {
	if t.YearsOfExperience == 0 {
		t.YearsOfExperience = 1
	}

	now := gutils.Clock.GetUTCNow()
	t.ID = primitive.NewObjectID()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.dao.CreateTechnology(ctx, t); err != nil {
		return nil, errors.Wrapf(err, "create technology %q", t.Name)
	}

	s.flushCache()
	return t, nil
}

// UpdateTechnology apply a partial update to one technology.
func (s *Portfolio) UpdateTechnology(ctx context.Context, id primitive.ObjectID, u *dto.TechnologyUpdate) (*model.Technology, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	t, err := s.dao.UpdateTechnology(ctx, id, u.Set(gutils.Clock.GetUTCNow()))
	if err != nil {
		return nil, errors.Wrapf(err, "update technology `%s`", id.Hex())
	}

	s.flushCache()
	return t, nil
}

// DeleteTechnology remove one technology.
func (s *Portfolio) DeleteTechnology(ctx context.Context, id primitive.ObjectID) error {
	if err := s.dao.DeleteTechnology(ctx, id); err != nil {
		return errors.Wrapf(err, "delete technology `%s`", id.Hex())
	}

	s.flushCache()
	return nil
}
