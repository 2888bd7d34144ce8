package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mzhalilov/go-user-registry/internal/config"
	"github.com/mzhalilov/go-user-registry/internal/logger"
	"github.com/mzhalilov/go-user-registry/internal/store"
	"github.com/mzhalilov/go-user-registry/internal/utils"
	"github.com/mzhalilov/go-user-registry/internal/validators"
	"github.com/mzhalilov/go-user-registry/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the UserRepository and issues HMAC-SHA256
// signed JWT tokens.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// validator checks the shape of login input before any store lookup.
	validator *validators.UserValidator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, validator *validators.UserValidator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// The credential shape is validated first (same email and password rules as
// registration, without the uniqueness check); a non-empty field-error map is
// returned before any store lookup. The lookup uses exact case-sensitive
// email match and the password comparison is verbatim.
//
// Both an unknown email and a wrong password yield ErrAuthFailed.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, map[string]string, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := a.validator.ValidateCredentials(ctx, email, password); len(fieldErrors) > 0 {
		log.Debug().Any("field_errors", fieldErrors).Msg("malformed login input")
		return models.User{}, fieldErrors, nil
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Debug().Str("email", email).Msg("login attempt for unknown email")
		return models.User{}, nil, ErrAuthFailed
	}

	if foundUser.Password != password {
		log.Debug().Int64("id", foundUser.ID).Msg("login attempt with wrong password")
		return models.User{}, nil, ErrAuthFailed
	}

	return foundUser, nil, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, embeds the user's ID and email,
// and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It verifies the signature, expiry, and issuer claim. Any validation failure
// is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
