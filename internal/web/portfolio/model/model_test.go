package model

import (
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
)

func TestBlogValidate(t *testing.T) {
	t.Parallel()

	valid := Blog{
		Title:    "A Post",
		Slug:     "a-post",
		Excerpt:  "short summary",
		Content:  "body",
		Category: BlogCategoryBackend,
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Blog)
	}{
		{"missing title", func(b *Blog) { b.Title = "" }},
		{"missing slug", func(b *Blog) { b.Slug = "" }},
		{"missing excerpt", func(b *Blog) { b.Excerpt = "" }},
		{"missing content", func(b *Blog) { b.Content = "" }},
		{"unknown category", func(b *Blog) { b.Category = "Gardening" }},
		{"negative read time", func(b *Blog) { b.ReadTime = -1 }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := valid
			tc.mutate(&b)
			err := b.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestProjectValidate(t *testing.T) {
	t.Parallel()

	valid := Project{
		Title:       "A Project",
		Description: "does something",
		Category:    ProjectCategoryBackend,
		Status:      ProjectStatusCompleted,
	}
	require.NoError(t, valid.Validate())

	broken := valid
	broken.Status = "abandoned"
	require.True(t, errors.Is(broken.Validate(), ErrInvalid))

	broken = valid
	broken.Category = "Hardware"
	require.True(t, errors.Is(broken.Validate(), ErrInvalid))
}

func TestTechnologyValidateProficiencyBounds(t *testing.T) {
	t.Parallel()

	tech := Technology{
		Name:        "Go",
		Category:    TechnologyCategoryLanguage,
		Proficiency: 5,
	}
	require.NoError(t, tech.Validate())

	for _, p := range []int{0, -1, 11, 100} {
		bad := tech
		bad.Proficiency = p
		require.True(t, errors.Is(bad.Validate(), ErrInvalid), "proficiency %d", p)
	}

	for _, p := range []int{1, 10} {
		ok := tech
		ok.Proficiency = p
		require.NoError(t, ok.Validate(), "proficiency %d", p)
	}
}

func TestContactValidate(t *testing.T) {
	t.Parallel()

	valid := Contact{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hi",
		Message: "Hello there",
		Status:  ContactStatusNew,
	}
	require.NoError(t, valid.Validate())

	broken := valid
	broken.Status = "archived"
	require.True(t, errors.Is(broken.Validate(), ErrInvalid))

	broken = valid
	broken.Message = ""
	require.True(t, errors.Is(broken.Validate(), ErrInvalid))
}

func TestResumeValidate(t *testing.T) {
	t.Parallel()

	valid := Resume{
		PersonalInfo: PersonalInfo{
			FullName: "Jane Doe",
			Title:    "ML Engineer",
			Email:    "jane@example.com",
		},
		Summary: "Engineer with a decade of backend and ML experience.",
	}
	require.NoError(t, valid.Validate())

	broken := valid
	broken.PersonalInfo.FullName = ""
	require.True(t, errors.Is(broken.Validate(), ErrInvalid))

	broken = valid
	broken.Summary = ""
	require.True(t, errors.Is(broken.Validate(), ErrInvalid))
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	require.True(t, BlogCategoryAIML.Valid())
	require.False(t, BlogCategory("ai/ml").Valid())

	require.True(t, GalleryCategoryTeam.Valid())
	require.False(t, GalleryCategory("Misc").Valid())

	require.True(t, OurStorySectionFuture.Valid())
	require.False(t, OurStorySection("Past").Valid())

	require.True(t, SuccessStoryCategoryEfficiency.Valid())
	require.False(t, SuccessStoryCategory("Misc").Valid())

	require.True(t, ContactStatusReplied.Valid())
	require.False(t, ContactStatus("spam").Valid())
}

func TestNewUserDefaults(t *testing.T) {
	t.Parallel()

	u := NewUser()
	require.False(t, u.ID.IsZero())
	require.Equal(t, UserRoleUser, u.Role)
	require.False(t, u.IsAdmin())
	require.False(t, u.CreatedAt.IsZero())
	require.Equal(t, u.CreatedAt, u.UpdatedAt)

	u.Role = UserRoleAdmin
	require.True(t, u.IsAdmin())
}
