package service

import (
	"context"

	"github.com/mzhalilov/go-user-registry/models"
)

// AuthService handles credential verification and JWT token lifecycle.
type AuthService interface {
	// Login validates the credential shape and authenticates the user.
	// A non-empty field-error map means the input was malformed and no
	// store lookup was attempted. ErrAuthFailed covers both unknown email
	// and wrong password.
	Login(ctx context.Context, email, password string) (models.User, map[string]string, error)

	// CreateToken issues a signed, time-limited JWT for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and decodes a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService handles registration and the read side of the user store.
type UserService interface {
	// Register validates the candidate record and appends it to the store.
	// A non-empty field-error map means validation failed and nothing was
	// stored; otherwise the returned user carries its assigned ID.
	Register(ctx context.Context, user models.User) (models.User, map[string]string, error)

	// List returns all users in insertion order.
	List(ctx context.Context) ([]models.User, error)

	// GetByID returns the user with the given ID or store.ErrUserNotFound.
	GetByID(ctx context.Context, id int64) (models.User, error)
}
