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

// ListCaseStudies load case studies matching the filter.
func (s *Portfolio) ListCaseStudies(ctx context.Context, f dto.CaseStudyFilter) ([]*model.CaseStudy, error) {
	key := cacheKey("case_studies", f)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*model.CaseStudy), nil
	}

	studies, err := s.dao.ListCaseStudies(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list case studies")
	}

	s.cache.SetDefault(key, studies)
	return studies, nil
}

// GetCaseStudyBySlug load one case study by slug.
func (s *Portfolio) GetCaseStudyBySlug(ctx context.Context, slug string) (*model.CaseStudy, error) {
	cs, err := s.dao.GetCaseStudyBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrapf(err, "get case study %q", slug)
	}

	return cs, nil
}

// GetCaseStudyByID load one case study by id.
func (s *Portfolio) GetCaseStudyByID(ctx context.Context, id primitive.ObjectID) (*model.CaseStudy, error) {
	cs, err := s.dao.GetCaseStudyByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get case study `%s`", id.Hex())
	}

	return cs, nil
}

// CreateCaseStudy persist a new case study, deriving the slug from the
// title when absent.
func (s *Portfolio) CreateCaseStudy(ctx context.Context, cs *model.CaseStudy) (*model.CaseStudy, error) {
	if cs.Slug == "" {
		cs.Slug = Slugify(cs.Title)
	}

	now := gutils.Clock.GetUTCNow()
	cs.ID = primitive.NewObjectID()
	cs.CreatedAt = now
	cs.UpdatedAt = now

	if err := cs.Validate(); err != nil {
		return nil, err
	}
	if err := s.dao.CreateCaseStudy(ctx, cs); err != nil {
		return nil, errors.Wrapf(err, "create case study %q", cs.Slug)
	}

	s.flushCache()
	s.logger.Info("created case study", zap.String("slug", cs.Slug))
	return cs, nil
}

// UpdateCaseStudy apply a partial update to one case study.
func (s *Portfolio) UpdateCaseStudy(ctx context.Context, id primitive.ObjectID, u *dto.CaseStudyUpdate) (*model.CaseStudy, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	cs, err := s.dao.UpdateCaseStudy(ctx, id, u.Set(gutils.Clock.GetUTCNow()))
	if err != nil {
		return nil, errors.Wrapf(err, "update case study `%s`", id.Hex())
	}

	s.flushCache()
	return cs, nil
}

// DeleteCaseStudy remove one case study.
func (s *Portfolio) DeleteCaseStudy(ctx context.Context, id primitive.ObjectID) error {
	if err := s.dao.DeleteCaseStudy(ctx, id); err != nil {
		return errors.Wrapf(err, "delete case study `%s`", id.Hex())
	}

	s.flushCache()
	return nil
}
