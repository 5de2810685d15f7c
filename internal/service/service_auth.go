package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-calorie-keeper/internal/config"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/metrics"
	"github.com/MKhiriev/go-calorie-keeper/internal/store"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
	"github.com/MKhiriev/go-calorie-keeper/internal/validators"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the e-mail and password of registration requests.
	validator validators.Validator

	// passwordHashCost is the bcrypt cost of newly hashed passwords.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg. A bcrypt cost outside the
// supported range falls back to bcrypt.DefaultCost.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewCredentialsValidator(),
		passwordHashCost: cost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterUser creates a new active user account.
//
// The e-mail is lower-cased before validation and storage, so logins are
// case-insensitive.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the e-mail or password is rejected.
//   - A wrapped storage error if the repository call fails (e.g. e-mail
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, credentials models.UserCredentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Email = normalizeEmail(credentials.Email)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.passwordHashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:          credentials.Email,
		HashedPassword: string(hash),
		IsActive:       true,
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	metrics.RecordUserRegistered()
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown e-mail and a wrong password both yield ErrWrongPassword so that
// callers cannot probe which accounts exist. An inactive account yields
// ErrUserInactive.
func (a *authService) Login(ctx context.Context, credentials models.UserCredentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Email = normalizeEmail(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.HashedPassword), []byte(credentials.Password)); err != nil {
		log.Info().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if !foundUser.IsActive {
		return models.User{}, ErrUserInactive
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate parses tokenString and loads its owner. A token of a deleted
// account is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Authenticate").Int64("user_id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !user.IsActive {
		return models.User{}, ErrUserInactive
	}

	return user, nil
}

func (a *authService) DeleteUser(ctx context.Context, userID int64) error {
	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
