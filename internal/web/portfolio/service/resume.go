package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// GetResume load the current resume.
func (s *Portfolio) GetResume(ctx context.Context) (*model.Resume, error) {
	const key = "resume:current"
	if v, ok := s.cache.Get(key); ok {
		return v.(*model.Resume), nil
	}

	r, err := s.dao.GetResume(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get resume")
	}

	s.cache.SetDefault(key, r)
	return r, nil
}

// ReplaceResume discard any stored resume and persist the given one.
func (s *Portfolio) ReplaceResume(ctx context.Context, r *model.Resume) (*model.Resume, error) {
	now := gutils.Clock.GetUTCNow()
	r.ID = primitive.NewObjectID()
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := s.dao.ReplaceResume(ctx, r); err != nil {
		return nil, errors.Wrap(err, "replace resume")
	}

	s.flushCache()
	return r, nil
}

// UpdateResume overwrite the stored resume in place, creating it when
// absent. created_at survives an in-place update.
func (s *Portfolio) UpdateResume(ctx context.Context, r *model.Resume) (*model.Resume, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	now := gutils.Clock.GetUTCNow()
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "personal_info", Value: r.PersonalInfo},
			{Key: "summary", Value: r.Summary},
			{Key: "experience", Value: r.Experience},
			{Key: "education", Value: r.Education},
			{Key: "certifications", Value: r.Certifications},
			{Key: "skills", Value: r.Skills},
			{Key: "languages", Value: r.Languages},
			{Key: "resume_file", Value: r.ResumeFile},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "created_at", Value: now},
		}},
	}

	doc, err := s.dao.UpsertResume(ctx, update)
	if err != nil {
		return nil, errors.Wrap(err, "update resume")
	}

	s.flushCache()
	return doc, nil
}
