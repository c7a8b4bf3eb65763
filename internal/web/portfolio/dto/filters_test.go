package dto

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBlogFilter(t *testing.T) {
	t.Parallel()

	f := ParseBlogFilter(url.Values{})
	require.Nil(t, f.Category)
	require.Nil(t, f.Published)

	f = ParseBlogFilter(url.Values{"category": {"Backend"}, "published": {"true"}})
	require.NotNil(t, f.Category)
	require.Equal(t, "Backend", *f.Category)
	require.NotNil(t, f.Published)
	require.True(t, *f.Published)

	// explicit published=false is distinct from an absent parameter
	f = ParseBlogFilter(url.Values{"published": {"false"}})
	require.NotNil(t, f.Published)
	require.False(t, *f.Published)

	// anything but "true" parses as false
	f = ParseBlogFilter(url.Values{"published": {"yes"}})
	require.NotNil(t, f.Published)
	require.False(t, *f.Published)
}

func TestParseProjectFilterFeatured(t *testing.T) {
	t.Parallel()

	// only featured=true narrows the listing
	f := ParseProjectFilter(url.Values{"featured": {"true"}})
	require.NotNil(t, f.Featured)
	require.True(t, *f.Featured)

	f = ParseProjectFilter(url.Values{"featured": {"false"}})
	require.Nil(t, f.Featured)

	f = ParseProjectFilter(url.Values{"featured": {"1"}})
	require.Nil(t, f.Featured)

	f = ParseProjectFilter(url.Values{})
	require.Nil(t, f.Featured)
}

func TestParseGalleryFilterComposition(t *testing.T) {
	t.Parallel()

	f := ParseGalleryFilter(url.Values{
		"category":  {"Team"},
		"featured":  {"true"},
		"published": {"false"},
	})
	require.Equal(t, "Team", *f.Category)
	require.True(t, *f.Featured)
	require.False(t, *f.Published)
}

func TestParseContactFilter(t *testing.T) {
	t.Parallel()

	f := ParseContactFilter(url.Values{})
	require.Nil(t, f.Status)

	f = ParseContactFilter(url.Values{"status": {"new"}})
	require.Equal(t, "new", *f.Status)
}

func TestFilterString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "-|-", BlogFilter{}.String())

	cat := "Backend"
	published := true
	require.Equal(t, "Backend|true", BlogFilter{Category: &cat, Published: &published}.String())

	featured := false
	require.Equal(t, "-|false|-", GalleryFilter{Featured: &featured}.String())

	// String must be stable across distinct pointers to equal values
	cat2 := "Backend"
	published2 := true
	require.Equal(t,
		BlogFilter{Category: &cat, Published: &published}.String(),
		BlogFilter{Category: &cat2, Published: &published2}.String())
}
