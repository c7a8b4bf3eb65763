package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// SubmitContact store a message from the public contact form. New
// messages always start in status new. The stored document never leaves
// the service; the endpoint only confirms receipt.
func (s *Portfolio) SubmitContact(ctx context.Context, sub *dto.ContactSubmission) error {
	if err := validateContactSubmission(sub); err != nil {
		return err
	}

	now := gutils.Clock.GetUTCNow()
	c := &model.Contact{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      sub.Name,
		Email:     sub.Email,
		Subject:   sub.Subject,
		Message:   sub.Message,
		Status:    model.ContactStatusNew,
	}

	if err := s.dao.CreateContact(ctx, c); err != nil {
		return errors.Wrapf(err, "create contact from %q", c.Email)
	}

	s.logger.Info("received contact message",
		zap.String("email", c.Email),
		zap.String("subject", c.Subject))
	return nil
}

// ListContacts load contact messages matching the filter. Admin only,
// never cached.
func (s *Portfolio) ListContacts(ctx context.Context, f dto.ContactFilter) ([]*model.Contact, error) {
	contacts, err := s.dao.ListContacts(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list contacts")
	}

	return contacts, nil
}

// GetContactByID load one contact message by id.
func (s *Portfolio) GetContactByID(ctx context.Context, id primitive.ObjectID) (*model.Contact, error) {
	c, err := s.dao.GetContactByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get contact `%s`", id.Hex())
	}

	return c, nil
}

// UpdateContact apply a triage update to one contact message. Only the
// status and replied flags may change.
func (s *Portfolio) UpdateContact(ctx context.Context, id primitive.ObjectID, u *dto.ContactUpdate) (*model.Contact, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	c, err := s.dao.UpdateContact(ctx, id, u.Set(gutils.Clock.GetUTCNow()))
	if err != nil {
		return nil, errors.Wrapf(err, "update contact `%s`", id.Hex())
	}

	return c, nil
}

// DeleteContact remove one contact message.
func (s *Portfolio) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	if err := s.dao.DeleteContact(ctx, id); err != nil {
		return errors.Wrapf(err, "delete contact `%s`", id.Hex())
	}

	return nil
}
