package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are hashed with bcrypt; tokens are HS256 JWTs whose subject is
// the user id.
type authService struct {
	// userRepository is used to resolve token subjects and usernames.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

func (a *authService) HashPassword(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return hash, err
}

// IssueToken issues a signed token for user, valid for the configured
// duration.
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates the signature, issuer and expiry of tokenString.
// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return 0, ErrTokenIsExpiredOrInvalid
	}

	return token.UserID, nil
}

// Authenticate resolves credentials to a stored user.
//
// A bearer token is verified and its subject looked up. Basic credentials
// first try the username slot as a token, then fall back to an exact
// username lookup and a password check.
//
// Returns:
//   - ErrUnauthorized if credentials are empty.
//   - ErrTokenIsExpiredOrInvalid for a rejected bearer token.
//   - ErrWrongCredentials for an unknown username or a wrong password.
func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	switch {
	case credentials.Token != "":
		return a.userFromToken(ctx, credentials.Token)
	case credentials.Username != "":
		if user, err := a.userFromToken(ctx, credentials.Username); err == nil {
			return user, nil
		}
		return a.userFromPassword(ctx, credentials.Username, credentials.Password)
	default:
		return models.User{}, ErrUnauthorized
	}
}

func (a *authService) userFromToken(ctx context.Context, tokenString string) (models.User, error) {
	userID, err := a.VerifyToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (a *authService) userFromPassword(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", username).Msg("unknown username")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}
