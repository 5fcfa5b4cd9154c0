// Package jwtx verifies bearer access tokens issued by an external identity
// provider against its published JWKS.
package jwtx

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("jwtx: missing token")
	ErrMissingKID   = errors.New("jwtx: missing kid header")
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrAudience    = errors.New("jwtx: audience mismatch")
	ErrExpired     = errors.New("jwtx: token expired or missing expiry")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrTokenUse    = errors.New("jwtx: wrong token_use")
)

// MissingScopeError reports which required scopes the token did not carry.
type MissingScopeError struct {
	Missing []string
}

func (e *MissingScopeError) Error() string {
	return "jwtx: missing scopes: " + strings.Join(e.Missing, " ")
}

// Verifier validates a bearer token and returns its claims if it is a valid,
// current access token carrying every required scope.
type Verifier interface {
	Verify(ctx context.Context, token string, requiredScopes ...string) (Claims, error)
}

// AccessVerifier validates RS256 access tokens against a KeyCache. Each call
// verifies freshly; outcomes are never cached since tokens carry their own
// expiry.
type AccessVerifier struct {
	keys   *KeyCache
	parser *jwt.Parser
}

// NewAccessVerifier builds a verifier pinned to one issuer and audience.
// Signature, exp (required), iat, iss and aud are all checked atomically by
// the parser before any claims are released.
func NewAccessVerifier(keys *KeyCache, issuer, audience string) *AccessVerifier {
	return &AccessVerifier{
		keys: keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
		),
	}
}

// Verify implements Verifier. On failure no partial claims are returned; the
// error is one of this package's sentinel kinds (or a *MissingScopeError),
// so callers can branch with errors.Is / errors.As.
func (v *AccessVerifier) Verify(
	ctx context.Context,
	token string,
	requiredScopes ...string,
) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, ErrMissingToken
	}

	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrMissingKID
		}
		return v.keys.Lookup(ctx, kid)
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if claims.TokenUse != TokenUseAccess {
		return Claims{}, ErrTokenUse
	}

	if missing := claims.MissingScopes(requiredScopes); len(missing) > 0 {
		return Claims{}, &MissingScopeError{Missing: missing}
	}

	return *claims, nil
}

// mapParseError reduces golang-jwt's joined errors to this package's
// sentinel kinds. Keyfunc errors (missing/unknown kid, fetch failures)
// travel through the parse error chain and are kept as-is.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrMissingKID),
		errors.Is(err, ErrUnknownKID),
		errors.Is(err, ErrKeyFetch):
		return err
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		// A token without exp is rejected for the same reason an expired
		// one is: no provable currency.
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrAudience
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return fmt.Errorf("jwtx: parse or verify: %w", err)
	}
}
