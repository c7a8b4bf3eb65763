// Package dao contains the data access objects of the portfolio vertical.
package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
	"github.com/Laisky/laisky-portfolio-api/library/db/mongo"
)

// Collection names.
const (
	colBlogs          = "blogs"
	colProjects       = "projects"
	colCaseStudies    = "case_studies"
	colContacts       = "contacts"
	colGallery        = "gallery"
	colOurStory       = "our_story"
	colResume         = "resume"
	colSuccessStories = "success_stories"
	colTechnologies   = "technologies"
	colUsers          = "users"
)

// Portfolio dao type
type Portfolio struct {
	logger glog.Logger
	db     mongo.DB
}

// New create new dao
func New(logger glog.Logger, db mongo.DB) *Portfolio {
	return &Portfolio{
		logger: logger,
		db:     db,
	}
}

// GetBlogsCol get blogs collection
func (d *Portfolio) GetBlogsCol() *mongoLib.Collection {
	return d.db.GetCol(colBlogs)
}

// GetProjectsCol get projects collection
func (d *Portfolio) GetProjectsCol() *mongoLib.Collection {
	return d.db.GetCol(colProjects)
}

// GetCaseStudiesCol get case studies collection
func (d *Portfolio) GetCaseStudiesCol() *mongoLib.Collection {
	return d.db.GetCol(colCaseStudies)
}

// GetContactsCol get contacts collection
func (d *Portfolio) GetContactsCol() *mongoLib.Collection {
	return d.db.GetCol(colContacts)
}

// GetGalleryCol get gallery collection
func (d *Portfolio) GetGalleryCol() *mongoLib.Collection {
	return d.db.GetCol(colGallery)
}

// GetOurStoryCol get our-story collection
func (d *Portfolio) GetOurStoryCol() *mongoLib.Collection {
	return d.db.GetCol(colOurStory)
}

// GetResumeCol get resume collection
func (d *Portfolio) GetResumeCol() *mongoLib.Collection {
	return d.db.GetCol(colResume)
}

// GetSuccessStoriesCol get success stories collection
func (d *Portfolio) GetSuccessStoriesCol() *mongoLib.Collection {
	return d.db.GetCol(colSuccessStories)
}

// GetTechnologiesCol get technologies collection
func (d *Portfolio) GetTechnologiesCol() *mongoLib.Collection {
	return d.db.GetCol(colTechnologies)
}

// GetUsersCol get users collection
func (d *Portfolio) GetUsersCol() *mongoLib.Collection {
	return d.db.GetCol(colUsers)
}

// EnsureIndexes create the unique indexes the schemas rely on.
func (d *Portfolio) EnsureIndexes(ctx context.Context) error {
	if _, err := d.GetUsersCol().Indexes().CreateOne(ctx, mongoLib.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return errors.Wrap(err, "create index for users.email")
	}

	for _, col := range []*mongoLib.Collection{d.GetBlogsCol(), d.GetCaseStudiesCol()} {
		if _, err := col.Indexes().CreateOne(ctx, mongoLib.IndexModel{
			Keys:    bson.M{"slug": 1},
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return errors.Wrapf(err, "create slug index for %q", col.Name())
		}
	}

	return nil
}

// findAll load every document matching query, in the order given by opts.
func findAll[T any](ctx context.Context,
	col *mongoLib.Collection, query bson.D,
	opts ...*options.FindOptions) (docs []*T, err error) {
	cur, err := col.Find(ctx, query, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "find in %q", col.Name())
	}
	defer cur.Close(ctx) //nolint:errcheck

	docs = []*T{}
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "load from %q", col.Name())
	}

	return docs, nil
}

// findOne load the first document matching query.
func findOne[T any](ctx context.Context,
	col *mongoLib.Collection, query bson.D,
	opts ...*options.FindOneOptions) (*T, error) {
	doc := new(T)
	if err := col.FindOne(ctx, query, opts...).Decode(doc); err != nil {
		if errors.Is(err, mongoLib.ErrNoDocuments) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrapf(err, "find one in %q", col.Name())
	}

	return doc, nil
}

// getByID load one document by its object id.
func getByID[T any](ctx context.Context,
	col *mongoLib.Collection, id primitive.ObjectID) (*T, error) {
	return findOne[T](ctx, col, bson.D{{Key: "_id", Value: id}})
}

// updateByID apply a $set to one document and return the updated document.
func updateByID[T any](ctx context.Context,
	col *mongoLib.Collection, id primitive.ObjectID, set bson.D) (*T, error) {
	doc := new(T)
	if err := col.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(doc); err != nil {
		if errors.Is(err, mongoLib.ErrNoDocuments) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrapf(err, "update in %q", col.Name())
	}

	return doc, nil
}

// deleteByID remove one document by its object id.
func deleteByID(ctx context.Context,
	col *mongoLib.Collection, id primitive.ObjectID) error {
	res, err := col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return errors.Wrapf(err, "delete from %q", col.Name())
	}
	if res.DeletedCount == 0 {
		return errors.WithStack(model.ErrNotFound)
	}

	return nil
}

// insertOne insert a document.
func insertOne(ctx context.Context, col *mongoLib.Collection, doc any) error {
	if _, err := col.InsertOne(ctx, doc); err != nil {
		return errors.Wrapf(err, "insert into %q", col.Name())
	}

	return nil
}
