package dto

import (
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

func setKeys(set bson.D) []string {
	keys := make([]string, 0, len(set))
	for _, e := range set {
		keys = append(keys, e.Key)
	}

	return keys
}

func TestBlogUpdateSet(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// nil fields stay untouched, updated_at is always bumped
	empty := BlogUpdate{}
	set := empty.Set(now)
	require.Equal(t, []string{"updated_at"}, setKeys(set))
	require.Equal(t, now, set[0].Value)

	title := "New Title"
	published := false
	u := BlogUpdate{Title: &title, Published: &published}
	set = u.Set(now)
	require.ElementsMatch(t, []string{"updated_at", "title", "published"}, setKeys(set))
}

func TestBlogUpdateValidate(t *testing.T) {
	t.Parallel()

	empty := ""
	u := BlogUpdate{Title: &empty}
	require.True(t, errors.Is(u.Validate(), model.ErrInvalid))

	bad := model.BlogCategory("Gardening")
	u = BlogUpdate{Category: &bad}
	require.True(t, errors.Is(u.Validate(), model.ErrInvalid))

	good := model.BlogCategoryCareer
	u = BlogUpdate{Category: &good}
	require.NoError(t, u.Validate())
}

func TestTechnologyUpdateValidate(t *testing.T) {
	t.Parallel()

	tooHigh := 11
	u := TechnologyUpdate{Proficiency: &tooHigh}
	require.True(t, errors.Is(u.Validate(), model.ErrInvalid))

	ok := 10
	u = TechnologyUpdate{Proficiency: &ok}
	require.NoError(t, u.Validate())
}

func TestSuccessStoryUpdateProjectID(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	malformed := "not-a-hex-id"
	u := SuccessStoryUpdate{ProjectID: &malformed}
	require.True(t, errors.Is(u.Validate(), model.ErrInvalid))

	hex := primitive.NewObjectID().Hex()
	u = SuccessStoryUpdate{ProjectID: &hex}
	require.NoError(t, u.Validate())

	set := u.Set(now)
	require.ElementsMatch(t, []string{"updated_at", "project_id"}, setKeys(set))
	for _, e := range set {
		if e.Key == "project_id" {
			oid, ok := e.Value.(primitive.ObjectID)
			require.True(t, ok)
			require.Equal(t, hex, oid.Hex())
		}
	}

	// empty string clears nothing, it only skips the field
	blank := ""
	u = SuccessStoryUpdate{ProjectID: &blank}
	require.NoError(t, u.Validate())
	require.Equal(t, []string{"updated_at"}, setKeys(u.Set(now)))
}

func TestContactUpdateLimitedToTriage(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	status := model.ContactStatusRead
	replied := true
	u := ContactUpdate{Status: &status, Replied: &replied}
	require.NoError(t, u.Validate())
	require.ElementsMatch(t, []string{"updated_at", "status", "replied"}, setKeys(u.Set(now)))

	bad := model.ContactStatus("spam")
	u = ContactUpdate{Status: &bad}
	require.True(t, errors.Is(u.Validate(), model.ErrInvalid))
}
