package service

import (
	"regexp"

	"github.com/Laisky/errors/v2"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// emailRe basic shape check: something@something.something, no whitespace.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateContactSubmission check that every contact form field is present
// and that the email looks like an address.
func validateContactSubmission(sub *dto.ContactSubmission) error {
	if sub.Name == "" || sub.Email == "" || sub.Subject == "" || sub.Message == "" {
		return errors.Wrap(model.ErrInvalid, "all fields are required")
	}
	if !emailRe.MatchString(sub.Email) {
		return errors.Wrapf(model.ErrInvalid, "invalid email address %q", sub.Email)
	}

	return nil
}
