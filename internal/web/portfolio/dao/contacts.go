package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// ListContacts load contact messages matching the filter, newest first.
func (d *Portfolio) ListContacts(ctx context.Context, f dto.ContactFilter) ([]*model.Contact, error) {
	query := bson.D{}
	if f.Status != nil {
		query = append(query, bson.E{Key: "status", Value: *f.Status})
	}

	return findAll[model.Contact](ctx, d.GetContactsCol(), query, sortCreatedDesc())
}

// GetContactByID load one contact message by id.
func (d *Portfolio) GetContactByID(ctx context.Context, id primitive.ObjectID) (*model.Contact, error) {
	return getByID[model.Contact](ctx, d.GetContactsCol(), id)
}

// CreateContact insert a contact message.
func (d *Portfolio) CreateContact(ctx context.Context, c *model.Contact) error {
	return insertOne(ctx, d.GetContactsCol(), c)
}

// UpdateContact apply a triage update and return the updated message.
func (d *Portfolio) UpdateContact(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Contact, error) {
	return updateByID[model.Contact](ctx, d.GetContactsCol(), id, set)
}

// DeleteContact remove a contact message.
func (d *Portfolio) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, d.GetContactsCol(), id)
}
