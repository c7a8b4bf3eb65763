package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The bootstrap content must pass the same validation the API applies,
// after the create-time defaults (slug derivation) are filled in.
func TestSeedSampleDataValid(t *testing.T) {
	t.Parallel()

	for _, tech := range sampleTechnologies() {
		require.NoError(t, tech.Validate(), "technology %q", tech.Name)
	}
	for _, p := range sampleProjects() {
		require.NoError(t, p.Validate(), "project %q", p.Title)
	}
	for _, st := range sampleSuccessStories() {
		require.NoError(t, st.Validate(), "success story %q", st.Title)
	}
	for _, o := range sampleStorySections() {
		require.NoError(t, o.Validate(), "story section %q", o.Title)
	}
	for _, g := range sampleGalleryItems() {
		require.NoError(t, g.Validate(), "gallery item %q", g.Title)
	}

	require.NoError(t, sampleResume().Validate())

	for _, b := range sampleBlogs() {
		if b.Slug == "" {
			b.Slug = Slugify(b.Title)
		}
		require.NoError(t, b.Validate(), "blog %q", b.Title)
	}
	for _, cs := range sampleCaseStudies() {
		if cs.Slug == "" {
			cs.Slug = Slugify(cs.Title)
		}
		require.NoError(t, cs.Validate(), "case study %q", cs.Title)
	}
}

// Natural keys must be unique within the seed set, otherwise reseeding
// would either dedupe silently or trip the unique indexes.
func TestSeedNaturalKeysUnique(t *testing.T) {
	t.Parallel()

	names := map[string]bool{}
	for _, tech := range sampleTechnologies() {
		require.False(t, names[tech.Name], "duplicate technology %q", tech.Name)
		names[tech.Name] = true
	}

	titles := map[string]bool{}
	for _, p := range sampleProjects() {
		require.False(t, titles[p.Title], "duplicate project %q", p.Title)
		titles[p.Title] = true
	}

	slugs := map[string]bool{}
	for _, b := range sampleBlogs() {
		slug := Slugify(b.Title)
		require.False(t, slugs[slug], "duplicate blog slug %q", slug)
		slugs[slug] = true
	}
	for _, cs := range sampleCaseStudies() {
		slug := Slugify(cs.Title)
		require.False(t, slugs[slug], "duplicate case study slug %q", slug)
		slugs[slug] = true
	}
}

// Create paths write ids, slugs, and timestamps into the documents they
// receive, so every seed run must get its own copies.
func TestSeedSamplesAreFreshPerCall(t *testing.T) {
	t.Parallel()

	a, b := sampleBlogs(), sampleBlogs()
	require.Equal(t, a, b)
	for i := range a {
		require.NotSame(t, a[i], b[i])
	}

	a[0].Slug = "mutated"
	require.Empty(t, sampleBlogs()[0].Slug)

	p1, p2 := sampleProjects(), sampleProjects()
	require.Equal(t, p1, p2)
	for i := range p1 {
		require.NotSame(t, p1[i], p2[i])
	}

	r1, r2 := sampleResume(), sampleResume()
	require.Equal(t, r1, r2)
	require.NotSame(t, r1, r2)
}
