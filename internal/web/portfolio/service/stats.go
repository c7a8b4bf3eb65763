package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
)

// Stats count every content collection for the admin dashboard. The
// counts run concurrently; the first failure cancels the rest.
func (s *Portfolio) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	var stats dto.StatsResponse
	pool, ctx := errgroup.WithContext(ctx)

	pool.Go(func() (err error) {
		stats.Blogs, err = s.dao.CountBlogs(ctx)
		return err
	})
	pool.Go(func() (err error) {
		stats.Projects, err = s.dao.CountProjects(ctx)
		return err
	})
	pool.Go(func() (err error) {
		stats.CaseStudies, err = s.dao.CountCaseStudies(ctx)
		return err
	})
	pool.Go(func() (err error) {
		stats.Contacts, err = s.dao.CountContacts(ctx)
		return err
	})
	pool.Go(func() (err error) {
		stats.Technologies, err = s.dao.CountTechnologies(ctx)
		return err
	})
	pool.Go(func() (err error) {
		stats.Gallery, err = s.dao.CountGallery(ctx)
		return err
	})

	if err := pool.Wait(); err != nil {
		return nil, errors.Wrap(err, "count collections")
	}

	return &stats, nil
}
