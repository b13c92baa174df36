package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and per-request Basic credential
// verification using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost controls the work factor of newly derived password
	// hashes. Verification reads the cost from the stored hash itself.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The plain-text password is replaced with its bcrypt hash before the user
// is handed to the repository, so cleartext never crosses the persistence
// boundary.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(user.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.EmailAddress).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies a raw "Authorization" header value.
//
// Verification steps:
//  1. Parse the header as "Basic <base64(email:password)>"; absence or any
//     parse failure yields ErrNoCredentialsProvided.
//  2. Look up the claimed user by email; a miss yields a wrapped
//     store.ErrNoUserWasFound.
//  3. Compare the password against the stored bcrypt hash (constant-time,
//     salt-aware); a mismatch yields ErrWrongPassword.
//
// The specific failure reason must stay server-side; callers respond with
// one generic 401 regardless of the cause.
func (a *authService) Authenticate(ctx context.Context, authHeader string) (models.User, error) {
	log := logger.FromContext(ctx)

	emailAddress, password, err := parseBasicAuthHeader(authHeader)
	if err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, emailAddress)
	if err != nil {
		log.Warn().Str("email", emailAddress).Msg("authentication failed: user lookup")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.ComparePassword(password, foundUser.PasswordHash) {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.EmailAddress).
			Msg("authentication failed: wrong password")
		return models.User{}, ErrWrongPassword
	}

	log.Debug().Int64("id", foundUser.UserID).Str("email", foundUser.EmailAddress).Msg("user authenticated")

	return foundUser, nil
}

// parseBasicAuthHeader extracts the credential pair from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Basic <base64(email:password)>
//
// Any deviation (empty header, wrong scheme, broken base64, missing colon)
// is reported as [ErrNoCredentialsProvided]; the caller does not need to
// distinguish the parse-failure variants.
func parseBasicAuthHeader(authHeader string) (emailAddress, password string, err error) {
	if authHeader == "" {
		return "", "", ErrNoCredentialsProvided
	}

	scheme, encoded, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return "", "", ErrNoCredentialsProvided
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", ErrNoCredentialsProvided
	}

	emailAddress, password, found = strings.Cut(string(decoded), ":")
	if !found || emailAddress == "" {
		return "", "", ErrNoCredentialsProvided
	}

	return emailAddress, password, nil
}
