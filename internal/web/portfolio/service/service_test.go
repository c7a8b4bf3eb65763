package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
)

func TestCacheKey(t *testing.T) {
	t.Parallel()

	cat := "Backend"
	published := true

	a := cacheKey("blogs", dto.BlogFilter{Category: &cat, Published: &published})
	catCopy := "Backend"
	publishedCopy := true
	b := cacheKey("blogs", dto.BlogFilter{Category: &catCopy, Published: &publishedCopy})

	// equal filter values must map to the same key even through fresh
	// pointers, and different values must not collide
	require.Equal(t, a, b)
	require.NotEqual(t, a, cacheKey("blogs", dto.BlogFilter{}))
	require.NotEqual(t, a, cacheKey("projects", dto.ProjectFilter{Category: &cat}))
}
