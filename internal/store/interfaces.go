package store

import (
	"context"

	"github.com/mzhalilov/go-user-registry/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser stores a new user, assigns the next sequential ID, and
	// returns the stored record. Email uniqueness is the caller's
	// responsibility; the repository appends unconditionally.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given ID or ErrUserNotFound.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByEmail returns the user with the exact (case-sensitive)
	// email or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ListUsers returns all users in insertion order. An empty slice is a
	// normal, non-error result.
	ListUsers(ctx context.Context) ([]models.User, error)
}
