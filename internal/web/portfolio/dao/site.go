package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// ListGallery load gallery items matching the filter, in display order.
func (d *Portfolio) ListGallery(ctx context.Context, f dto.GalleryFilter) ([]*model.Gallery, error) {
	query := bson.D{}
	if f.Category != nil {
		query = append(query, bson.E{Key: "category", Value: *f.Category})
	}
	if f.Featured != nil {
		query = append(query, bson.E{Key: "featured", Value: *f.Featured})
	}
	if f.Published != nil {
		query = append(query, bson.E{Key: "published", Value: *f.Published})
	}

	return findAll[model.Gallery](ctx, d.GetGalleryCol(), query,
		options.Find().SetSort(bson.D{
			{Key: "order", Value: 1},
			{Key: "created_at", Value: -1},
		}))
}

// GetGalleryByID load one gallery item by id.
func (d *Portfolio) GetGalleryByID(ctx context.Context, id primitive.ObjectID) (*model.Gallery, error) {
	return getByID[model.Gallery](ctx, d.GetGalleryCol(), id)
}

// CreateGallery insert a gallery item.
func (d *Portfolio) CreateGallery(ctx context.Context, g *model.Gallery) error {
	return insertOne(ctx, d.GetGalleryCol(), g)
}

// UpdateGallery apply a partial update and return the updated item.
func (d *Portfolio) UpdateGallery(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Gallery, error) {
	return updateByID[model.Gallery](ctx, d.GetGalleryCol(), id, set)
}

// DeleteGallery remove a gallery item.
func (d *Portfolio) DeleteGallery(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, d.GetGalleryCol(), id)
}

// ListOurStory load story sections matching the filter, by display order.
func (d *Portfolio) ListOurStory(ctx context.Context, f dto.OurStoryFilter) ([]*model.OurStory, error) {
	query := bson.D{}
	if f.Published != nil {
		query = append(query, bson.E{Key: "published", Value: *f.Published})
	}

	return findAll[model.OurStory](ctx, d.GetOurStoryCol(), query,
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
}

// GetOurStoryByID load one story section by id.
func (d *Portfolio) GetOurStoryByID(ctx context.Context, id primitive.ObjectID) (*model.OurStory, error) {
	return getByID[model.OurStory](ctx, d.GetOurStoryCol(), id)
}

// CreateOurStory insert a story section.
func (d *Portfolio) CreateOurStory(ctx context.Context, o *model.OurStory) error {
	return insertOne(ctx, d.GetOurStoryCol(), o)
}

// UpdateOurStory apply a partial update and return the updated section.
func (d *Portfolio) UpdateOurStory(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.OurStory, error) {
	return updateByID[model.OurStory](ctx, d.GetOurStoryCol(), id, set)
}

// DeleteOurStory remove a story section.
func (d *Portfolio) DeleteOurStory(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, d.GetOurStoryCol(), id)
}

// GetResume load the current resume, the newest document when several exist.
func (d *Portfolio) GetResume(ctx context.Context) (*model.Resume, error) {
	return findOne[model.Resume](ctx, d.GetResumeCol(), bson.D{},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

// ReplaceResume drop every stored resume and insert the given one.
func (d *Portfolio) ReplaceResume(ctx context.Context, r *model.Resume) error {
	if _, err := d.GetResumeCol().DeleteMany(ctx, bson.D{}); err != nil {
		return errors.Wrap(err, "delete existing resume")
	}

	return insertOne(ctx, d.GetResumeCol(), r)
}

// UpsertResume update the stored resume in place, creating it when absent.
// update carries the full update document ($set and friends).
func (d *Portfolio) UpsertResume(ctx context.Context, update bson.D) (*model.Resume, error) {
	doc := new(model.Resume)
	if err := d.GetResumeCol().FindOneAndUpdate(ctx,
		bson.D{},
		update,
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(doc); err != nil {
		if errors.Is(err, mongoLib.ErrNoDocuments) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrap(err, "upsert resume")
	}

	return doc, nil
}
