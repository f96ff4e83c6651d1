package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors for the
// authentication flow.
//
// It embeds [jwt.RegisteredClaims] for standard claim access (subject,
// expiry, issuer, token id) and adds the application-specific role claim.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID and Role are parsed copies of the "sub" and "role" claims populated
// after successful generation or validation, so callers never re-parse the
// claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set
	// (sub, exp, iat, iss, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Role carries the account role so the authorization layer can scope
	// queries without a second credential-store lookup.
	Role string `json:"role"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject identifier cached from the "sub" claim.
	UserID string `json:"-"`
}

// Identity returns the scoping principal encoded in the token claims.
func (t *Token) Identity() Identity {
	return Identity{ID: t.UserID, Role: t.Role}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
