package service

import (
	"context"
	"fmt"

	"github.com/mzhalilov/go-user-registry/internal/logger"
	"github.com/mzhalilov/go-user-registry/internal/store"
	"github.com/mzhalilov/go-user-registry/internal/validators"
	"github.com/mzhalilov/go-user-registry/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	validator      *validators.UserValidator
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository and
// validator.
func NewUserService(userRepository store.UserRepository, validator *validators.UserValidator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// Register validates the candidate record against the field rules and, when
// valid, appends it to the store. Bio defaults to the empty string simply by
// being absent from the request body.
//
// A failed validation consumes no user ID: identifiers stay strictly
// sequential across successful registrations only.
func (s *userService) Register(ctx context.Context, user models.User) (models.User, map[string]string, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := s.validator.ValidateRegistration(ctx, user); len(fieldErrors) > 0 {
		log.Debug().Any("field_errors", fieldErrors).Msg("registration rejected by validation")
		return models.User{}, fieldErrors, nil
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, nil, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil, nil
}

// List returns all users in insertion order. An empty slice is a normal
// result; the handler decides how to surface it.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}

// GetByID returns the user with the given ID. A miss surfaces as
// store.ErrUserNotFound for the handler to map to 404.
func (s *userService) GetByID(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
