package model

import (
	"time"

	gutils "github.com/Laisky/go-utils/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole user role
type UserRole string

const (
	// UserRoleAdmin may call all privileged endpoints
	UserRoleAdmin UserRole = "admin"
	// UserRoleUser ordinary user, no admin surface access
	UserRoleUser UserRole = "user"
)

// User admin panel accounts
type User struct {
	// ID unique identifier for the user
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// CreatedAt time when the user was created
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	// UpdatedAt last modified time
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	// Email login account, unique at the collection level
	Email string `bson:"email" json:"email"`
	// Password hashed password
	//
	//  `gcrypto.VerifyHashedPassword`
	Password string `bson:"password" json:"-"`
	// Role role of the user
	Role UserRole `bson:"role" json:"role"`
}

// IsAdmin whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// NewUser create a new user
func NewUser() *User {
	now := gutils.Clock.GetUTCNow()
	return &User{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
		Role:      UserRoleUser,
	}
}
