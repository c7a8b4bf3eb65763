// Package service is the service layer of the portfolio vertical.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	gocache "github.com/patrickmn/go-cache"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dao"
	"github.com/Laisky/laisky-portfolio-api/library/jwt"
)

const (
	// publicCacheTTL how long public listings may be served from cache
	publicCacheTTL = time.Minute
	// cacheCleanupInterval how often expired entries are evicted
	cacheCleanupInterval = 5 * time.Minute
)

// Portfolio portfolio service
type Portfolio struct {
	logger glog.Logger
	dao    *dao.Portfolio
	jwt    *jwt.JWT

	// cache holds public list responses; flushed on every mutation so
	// admin edits become visible within one request.
	cache *gocache.Cache
}

// New new portfolio service
func New(ctx context.Context,
	logger glog.Logger,
	dao *dao.Portfolio,
	jwtLib *jwt.JWT) (*Portfolio, error) {
	s := &Portfolio{
		logger: logger,
		dao:    dao,
		jwt:    jwtLib,
		cache:  gocache.New(publicCacheTTL, cacheCleanupInterval),
	}

	if err := s.dao.EnsureIndexes(ctx); err != nil {
		return nil, errors.Wrap(err, "ensure indexes")
	}

	return s, nil
}

// cacheKey derive a cache key from an endpoint prefix and its filter.
func cacheKey(prefix string, filter any) string {
	return prefix + ":" + fmt.Sprintf("%+v", filter)
}

// flushCache drops all cached listings after a mutation.
func (s *Portfolio) flushCache() {
	s.cache.Flush()
}
