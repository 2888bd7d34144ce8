package store

import (
	"context"
	"sync"

	"github.com/mzhalilov/go-user-registry/internal/logger"
	"github.com/mzhalilov/go-user-registry/models"
)

// memoryUserRepository is the in-memory implementation of [UserRepository].
//
// Users live in an append-only slice, so insertion order and listing order
// coincide. IDs come from a counter that starts at 1 and only ever grows;
// an ID is never reused even if a registration later fails elsewhere.
// The whole store is process-lifetime-scoped: created empty at startup,
// discarded at exit.
//
// The mutex keeps concurrent HTTP requests race-free; there is no
// cross-request transactional isolation beyond that.
type memoryUserRepository struct {
	logger *logger.Logger

	mu     sync.RWMutex
	users  []models.User
	nextID int64
}

// NewUserRepository constructs an empty in-memory [UserRepository].
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &memoryUserRepository{
		logger: logger,
		users:  make([]models.User, 0),
		nextID: 1,
	}
}

// CreateUser appends the user, assigns the next sequential ID, and returns
// the stored record.
func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)

	log.Debug().Int64("id", user.ID).Str("email", user.Email).Msg("user stored")

	return user, nil
}

// FindUserByID returns the user with the given ID or [ErrUserNotFound].
func (r *memoryUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// FindUserByEmail returns the user with the exact email or [ErrUserNotFound].
// Matching is case-sensitive: no normalization is applied to either side.
func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// ListUsers returns a copy of all users in insertion order.
func (r *memoryUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, len(r.users))
	copy(users, r.users)

	return users, nil
}
