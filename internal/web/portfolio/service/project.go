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

// ListProjects load projects matching the filter.
func (s *Portfolio) ListProjects(ctx context.Context, f dto.ProjectFilter) ([]*model.Project, error) {
	key := cacheKey("projects", f)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*model.Project), nil
	}

	projects, err := s.dao.ListProjects(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list projects")
	}

	s.cache.SetDefault(key, projects)
	return projects, nil
}

// GetProjectByID load one project by id.
func (s *Portfolio) GetProjectByID(ctx context.Context, id primitive.ObjectID) (*model.Project, error) {
	p, err := s.dao.GetProjectByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get project `%s`", id.Hex())
	}

	return p, nil
}

// CreateProject persist a new project. The status defaults to completed,
// matching the schema default.
func (s *Portfolio) CreateProject(ctx context.Context, p *model.Project) (*model.Project, error) {
	if p.Status == "" {
		p.Status = model.ProjectStatusCompleted
	}

	now := gutils.Clock.GetUTCNow()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.dao.CreateProject(ctx, p); err != nil {
		return nil, errors.Wrapf(err, "create project %q", p.Title)
	}

	s.flushCache()
	s.logger.Info("created project", zap.String("title", p.Title))
	return p, nil
}

// UpdateProject apply a partial update to one project.
func (s *Portfolio) UpdateProject(ctx context.Context, id primitive.ObjectID, u *dto.ProjectUpdate) (*model.Project, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	p, err := s.dao.UpdateProject(ctx, id, u.Set(gutils.Clock.GetUTCNow()))
	if err != nil {
		return nil, errors.Wrapf(err, "update project `%s`", id.Hex())
	}

	s.flushCache()
	return p, nil
}

// DeleteProject remove one project.
func (s *Portfolio) DeleteProject(ctx context.Context, id primitive.ObjectID) error {
	if err := s.dao.DeleteProject(ctx, id); err != nil {
		return errors.Wrapf(err, "delete project `%s`", id.Hex())
	}

	s.flushCache()
	return nil
}
