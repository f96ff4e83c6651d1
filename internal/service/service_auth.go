// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmaraujo/gymkeeper/internal/config"
	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/store"
	"github.com/dmaraujo/gymkeeper/internal/utils"
	"github.com/dmaraujo/gymkeeper/internal/validators"
	"github.com/dmaraujo/gymkeeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the JWT
// lifecycle, using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// denylist records revoked token ids until their natural expiry.
	denylist store.TokenDenylist

	// validator enforces the register and login input rules.
	validator validators.Validator

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

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, denylist store.TokenDenylist, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		denylist:       denylist,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The plaintext password is bcrypt-hashed before persistence and never
// stored or logged. Accounts default to the "user" role; the request may
// name "admin" explicitly.
//
// Returns the persisted user or:
//   - a *ValidationError listing every violated input rule.
//   - a wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if violations := a.validator.Validate(ctx, req); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid registration data provided")
		return models.User{}, NewValidationError(violations)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		ID:           utils.NewID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and compares the supplied password
// against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - a *ValidationError listing every violated input rule.
//   - a wrapped storage error if the lookup fails (see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if violations := a.validator.Validate(ctx, req); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid login data provided")
		return models.User{}, NewValidationError(violations)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := utils.CheckPassword(foundUser.PasswordHash, req.Password); err != nil {
		log.Error().Str("email", req.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, the user id as "sub", the
// account role as a custom claim and a fresh "jti" for revocation, and
// expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It verifies the signature and the issuer claim, then checks the token id
// against the denylist. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors; a revoked token yields
// ErrTokenRevoked.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.denylist.IsRevoked(ctx, token.ID)
	if err != nil {
		return models.Token{}, fmt.Errorf("denylist lookup failed: %w", err)
	}
	if revoked {
		return models.Token{}, ErrTokenRevoked
	}

	return token, nil
}

// RevokeToken denylists the token id for the remainder of the token's
// lifetime. Without a configured denylist backend this is a no-op and the
// token stays valid until expiry.
func (a *authService) RevokeToken(ctx context.Context, token models.Token) error {
	var ttl time.Duration
	if token.ExpiresAt != nil {
		ttl = time.Until(token.ExpiresAt.Time)
	}
	if err := a.denylist.Revoke(ctx, token.ID, ttl); err != nil {
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}

// ResolveIdentity maps a parsed token to the identity of a live account.
// The lookup guards against tokens that outlive their account.
func (a *authService) ResolveIdentity(ctx context.Context, token models.Token) (models.Identity, error) {
	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		return models.Identity{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	return user.Identity(), nil
}
