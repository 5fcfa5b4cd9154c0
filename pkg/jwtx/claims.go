package jwtx

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenUseAccess is the token_use value required on access tokens. The
// identity provider also mints id tokens with token_use "id"; those must
// never authorize API calls.
const TokenUseAccess = "access"

// Claims are the access-token claims this service trusts. They are only ever
// produced by a successful AccessVerifier.Verify; never build them from
// unverified input.
type Claims struct {
	jwt.RegisteredClaims

	// TokenUse distinguishes access tokens from id tokens ("access"/"id").
	TokenUse string `json:"token_use,omitempty"`

	// Scope is the space-delimited scope claim as issued. May be empty.
	Scope string `json:"scope,omitempty"`

	// Username is the provider's login name for the subject, when present.
	Username string `json:"username,omitempty"`
}

// Scopes splits the space-delimited scope claim into granted scope names.
func (c *Claims) Scopes() []string {
	return strings.Fields(c.Scope)
}

// MissingScopes returns which of the required scopes are absent from the
// scope claim, preserving the order they were required in.
func (c *Claims) MissingScopes(required []string) []string {
	if len(required) == 0 {
		return nil
	}

	granted := make(map[string]struct{})
	for _, s := range c.Scopes() {
		granted[s] = struct{}{}
	}

	var missing []string
	for _, want := range required {
		if _, ok := granted[want]; !ok {
			missing = append(missing, want)
		}
	}
	return missing
}
