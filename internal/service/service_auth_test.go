// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaraujo/gymkeeper/internal/config"
	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/store"
	"github.com/dmaraujo/gymkeeper/internal/utils"
	"github.com/dmaraujo/gymkeeper/internal/validators"
	"github.com/dmaraujo/gymkeeper/models"
)

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, id string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return m.findUserByIDFn(ctx, id)
}

// mockDenylist implements store.TokenDenylist for unit tests.
type mockDenylist struct {
	revokeFn    func(ctx context.Context, tokenID string, ttl time.Duration) error
	isRevokedFn func(ctx context.Context, tokenID string) (bool, error)
}

func (m *mockDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if m.revokeFn == nil {
		return nil
	}
	return m.revokeFn(ctx, tokenID, ttl)
}

func (m *mockDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.isRevokedFn == nil {
		return false, nil
	}
	return m.isRevokedFn(ctx, tokenID)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "gymkeeper",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(repo store.UserRepository, denylist store.TokenDenylist) AuthService {
	if denylist == nil {
		denylist = store.NewNoopDenylist()
	}
	return NewAuthService(repo, denylist, validators.NewEntityValidator(), testAppConfig(), logger.Nop())
}

func validRegister() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "secret1",
	}
}

func TestRegisterUser_HashesPasswordAndStampsFields(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			return user, nil
		},
	}

	svc := newTestAuthService(repo, nil)

	registered, err := svc.RegisterUser(context.Background(), validRegister())
	require.NoError(t, err)

	assert.NotEmpty(t, persisted.ID)
	assert.Equal(t, models.RoleUser, persisted.Role)
	assert.NotEqual(t, "secret1", persisted.PasswordHash)
	assert.NoError(t, utils.CheckPassword(persisted.PasswordHash, "secret1"))
	assert.Equal(t, persisted.ID, registered.ID)
}

func TestRegisterUser_ExplicitAdminRole(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			return user, nil
		},
	}

	svc := newTestAuthService(repo, nil)

	req := validRegister()
	req.Role = models.RoleAdmin
	_, err := svc.RegisterUser(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, persisted.Role)

	req.Role = "owner"
	_, err = svc.RegisterUser(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_ValidationViolationsItemized(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("repository must not be called for invalid input")
			return models.User{}, nil
		},
	}

	svc := newTestAuthService(repo, nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Name: "M", Email: "bad", Password: "123"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 3)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_DuplicateEmailPassthrough(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	svc := newTestAuthService(repo, nil)

	_, err := svc.RegisterUser(context.Background(), validRegister())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{ID: "u-1", Email: email, PasswordHash: hash, Role: models.RoleUser}, nil
		},
	}

	svc := newTestAuthService(repo, nil)

	user, err := svc.Login(context.Background(), models.LoginRequest{Email: "maria@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{ID: "u-1", Email: email, PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(repo, nil)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "maria@example.com", Password: "other-password"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownEmailPassthrough(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := newTestAuthService(repo, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "missing@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, nil)
	user := models.User{ID: "u-1", Role: models.RoleAdmin}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
	assert.NotEmpty(t, parsed.ID)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, nil)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Revoked(t *testing.T) {
	denylist := &mockDenylist{
		isRevokedFn: func(_ context.Context, _ string) (bool, error) {
			return true, nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, denylist)

	token, err := svc.CreateToken(context.Background(), models.User{ID: "u-1", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestRevokeToken_UsesRemainingLifetime(t *testing.T) {
	var gotTTL time.Duration
	var gotID string
	denylist := &mockDenylist{
		revokeFn: func(_ context.Context, tokenID string, ttl time.Duration) error {
			gotID = tokenID
			gotTTL = ttl
			return nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, denylist)

	token, err := svc.CreateToken(context.Background(), models.User{ID: "u-1", Role: models.RoleUser})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(context.Background(), token))
	assert.Equal(t, token.ID, gotID)
	assert.Greater(t, gotTTL, 55*time.Minute)
	assert.LessOrEqual(t, gotTTL, time.Hour)
}

func TestResolveIdentity(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id string) (models.User, error) {
			if id != "u-1" {
				return models.User{}, store.ErrNoUserWasFound
			}
			return models.User{ID: "u-1", Role: models.RoleAdmin}, nil
		},
	}
	svc := newTestAuthService(repo, nil)

	ident, err := svc.ResolveIdentity(context.Background(), models.Token{UserID: "u-1"})
	require.NoError(t, err)
	assert.True(t, ident.IsAdmin())

	_, err = svc.ResolveIdentity(context.Background(), models.Token{UserID: "gone"})
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}
