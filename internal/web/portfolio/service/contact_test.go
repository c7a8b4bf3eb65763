package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
)

// The public submission endpoint confirms receipt without echoing the
// stored message, so the service keeps the persisted document out of
// its return surface entirely. The assignment below stops compiling if
// the document ever comes back.
func TestSubmitContactExposesNoDocument(t *testing.T) {
	t.Parallel()

	var submit func(context.Context, *dto.ContactSubmission) error = (*Portfolio)(nil).SubmitContact
	require.NotNil(t, submit)
}
