package model

import (
	"time"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactStatus triage status of a contact message
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// Valid whether the status is one of the known values
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	default:
		return false
	}
}

// Contact messages submitted through the public contact form.
//
// Content fields are immutable once created; only Status and Replied
// may be changed afterwards, by an admin.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    ContactStatus      `bson:"status" json:"status"`
	Replied   bool               `bson:"replied" json:"replied"`
}

// Validate check required fields and enum membership
func (c *Contact) Validate() error {
	if c.Name == "" {
		return errors.Wrap(ErrInvalid, "name is required")
	}
	if c.Email == "" {
		return errors.Wrap(ErrInvalid, "email is required")
	}
	if c.Subject == "" {
		return errors.Wrap(ErrInvalid, "subject is required")
	}
	if c.Message == "" {
		return errors.Wrap(ErrInvalid, "message is required")
	}
	if !c.Status.Valid() {
		return errors.Wrapf(ErrInvalid, "unknown status %q", c.Status)
	}

	return nil
}
