package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/service"
	"github.com/dmaraujo/gymkeeper/internal/store"
	"github.com/dmaraujo/gymkeeper/internal/utils"
	"github.com/dmaraujo/gymkeeper/models"
)

// authedProbe wraps the auth middleware around a handler that records the
// identity and token the middleware placed in the context.
func authedProbe(auth service.AuthService) (http.Handler, *models.Identity, *models.Token) {
	h := NewHandler(&service.Services{AuthService: auth}, logger.Nop())

	var gotIdent models.Identity
	var gotToken models.Token
	probe := h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ident, ok := utils.GetIdentityFromContext(r.Context()); ok {
			gotIdent = ident
		}
		if token, ok := utils.GetTokenFromContext(r.Context()); ok {
			gotToken = token
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	return probe, &gotIdent, &gotToken
}

func TestAuthMiddleware_RejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantMessage string
	}{
		{"no header", "", ErrEmptyAuthorizationHeader.Error()},
		{"wrong scheme", "Basic abc", ErrInvalidAuthorizationHeader.Error()},
		{"bare scheme", "Bearer", ErrInvalidAuthorizationHeader.Error()},
		{"extra parts", "Bearer a b", ErrInvalidAuthorizationHeader.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ParseToken must not be reached for malformed headers.
			probe, _, _ := authedProbe(&mockAuthService{
				parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken called for a malformed header")
					return models.Token{}, nil
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/alunos", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			probe.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	tests := []struct {
		name     string
		parseErr error
	}{
		{"expired or forged", service.ErrTokenIsExpiredOrInvalid},
		{"revoked", service.ErrTokenRevoked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe, _, _ := authedProbe(&mockAuthService{
				parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					return models.Token{}, tt.parseErr
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/alunos", nil)
			req.Header.Set("Authorization", "Bearer some.signed.token")
			rec := httptest.NewRecorder()
			probe.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_RejectsTokenOfDeletedAccount(t *testing.T) {
	probe, _, _ := authedProbe(&mockAuthService{
		parseTokenFn: func(_ context.Context, signed string) (models.Token, error) {
			return models.Token{SignedString: signed}, nil
		},
		resolveIdentityFn: func(_ context.Context, _ models.Token) (models.Identity, error) {
			return models.Identity{}, store.ErrNoUserWasFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/alunos", nil)
	req.Header.Set("Authorization", "Bearer some.signed.token")
	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// A valid token of a gone account must look like any other bad token.
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token is expired or invalid", resp.Message)
}

func TestAuthMiddleware_InjectsIdentityAndToken(t *testing.T) {
	wantIdent := models.Identity{ID: "u-1", Role: models.RoleAdmin}

	probe, gotIdent, gotToken := authedProbe(&mockAuthService{
		parseTokenFn: func(_ context.Context, signed string) (models.Token, error) {
			return models.Token{SignedString: signed}, nil
		},
		resolveIdentityFn: func(_ context.Context, _ models.Token) (models.Identity, error) {
			return wantIdent, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/alunos", nil)
	req.Header.Set("Authorization", "Bearer some.signed.token")
	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, wantIdent, *gotIdent)
	assert.Equal(t, "some.signed.token", gotToken.SignedString)
}

func TestLogout_RevokesPresentedToken(t *testing.T) {
	var revoked models.Token
	svcs := &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, signed string) (models.Token, error) {
				return models.Token{SignedString: signed}, nil
			},
			resolveIdentityFn: func(_ context.Context, _ models.Token) (models.Identity, error) {
				return testIdentity, nil
			},
			revokeTokenFn: func(_ context.Context, token models.Token) error {
				revoked = token
				return nil
			},
		},
	}

	rec := doAuthed(t, svcs, http.MethodPost, "/api/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "any.signed.token", revoked.SignedString)

	var resp models.Ack
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "logged out", resp.Message)
}
