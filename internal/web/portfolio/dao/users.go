package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	gcrypto "github.com/Laisky/go-utils/v6/crypto"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// GetUserByEmail load one user by login email.
func (d *Portfolio) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, d.GetUsersCol(), bson.D{{Key: "email", Value: email}})
}

// CreateUser insert a user.
func (d *Portfolio) CreateUser(ctx context.Context, u *model.User) error {
	return insertOne(ctx, d.GetUsersCol(), u)
}

// ValidateLogin validate user login
func (d *Portfolio) ValidateLogin(ctx context.Context, email, rawPassword string) (u *model.User, err error) {
	d.logger.Debug("ValidateLogin", zap.String("email", email))
	if u, err = d.GetUserByEmail(ctx, email); err != nil {
		return nil, errors.Wrapf(err, "find user %q", email)
	}

	if err = gcrypto.VerifyHashedPassword([]byte(rawPassword), u.Password); err != nil {
		return nil, errors.Wrapf(err, "verify password for %q", email)
	}

	return u, nil
}
