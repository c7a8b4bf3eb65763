package service

import (
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

func TestValidateContactSubmission(t *testing.T) {
	t.Parallel()

	valid := dto.ContactSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I would like to talk about a project.",
	}
	require.NoError(t, validateContactSubmission(&valid))

	cases := []struct {
		name   string
		mutate func(*dto.ContactSubmission)
	}{
		{"missing name", func(s *dto.ContactSubmission) { s.Name = "" }},
		{"missing email", func(s *dto.ContactSubmission) { s.Email = "" }},
		{"missing subject", func(s *dto.ContactSubmission) { s.Subject = "" }},
		{"missing message", func(s *dto.ContactSubmission) { s.Message = "" }},
		{"email without at", func(s *dto.ContactSubmission) { s.Email = "jane.example.com" }},
		{"email without domain dot", func(s *dto.ContactSubmission) { s.Email = "jane@example" }},
		{"email with whitespace", func(s *dto.ContactSubmission) { s.Email = "jane doe@example.com" }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sub := valid
			tc.mutate(&sub)
			err := validateContactSubmission(&sub)
			require.Error(t, err)
			require.True(t, errors.Is(err, model.ErrInvalid))
		})
	}
}
