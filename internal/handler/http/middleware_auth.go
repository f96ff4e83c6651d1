package http

import (
	"context"
	"net/http"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via the auth service and resolves the subject to a
// live account. On success the resolved identity is stored in the request
// context under [utils.IdentityCtxKey] before delegating to the next
// handler, so ownership scoping never trusts the raw claims alone.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent or not "Bearer <token>".
//   - the token is expired, malformed, wrongly signed or revoked.
//   - the account the token refers to no longer exists.
//
// The parsed token is also kept in the context so the logout handler can
// revoke exactly the token that was presented.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			respondError(w, r, err)
			return
		}

		ident, err := h.services.AuthService.ResolveIdentity(ctx, token)
		if err != nil {
			log.Err(err).Msg("token subject no longer resolves to an account")
			utils.WriteError(w, "token is expired or invalid", http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.IdentityCtxKey, ident)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
