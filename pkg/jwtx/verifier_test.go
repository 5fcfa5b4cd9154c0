package jwtx

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://cognito-idp.us-east-1.amazonaws.com/us-east-1_test"
	testAudience = "client-123"
)

func writeJSONBody(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// signTestToken signs claims with RS256 and the given kid header.
func signTestToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		tok.Header["kid"] = kid
	}
	signed, err := tok.SignedString(key)
	require.NoError(t, err)
	return signed
}

// validClaims returns a claim set that passes every check; tests override
// single fields to exercise one failure at a time.
func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":       "user-1",
		"iss":       testIssuer,
		"aud":       testAudience,
		"exp":       now.Add(300 * time.Second).Unix(),
		"iat":       now.Add(-time.Minute).Unix(),
		"token_use": TokenUseAccess,
		"scope":     "",
		"username":  "alice",
	}
}

func newTestVerifier(t *testing.T) (*AccessVerifier, *rsa.PrivateKey) {
	t.Helper()

	key := testRSAKey(t)
	srv := newJWKSServer(t, JWKS{Keys: []JWK{NewRSAJWK("k1", "sig", "RS256", &key.PublicKey)}})
	cache := NewKeyCache(KeyCacheOptions{JWKSURL: srv.URL, RefreshInterval: time.Hour})
	return NewAccessVerifier(cache, testIssuer, testAudience), key
}

func TestVerifyValidToken(t *testing.T) {
	t.Parallel()

	v, key := newTestVerifier(t)

	token := signTestToken(t, key, "k1", validClaims())
	claims, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "alice", claims.Username)
	require.Empty(t, claims.Scopes())
}

func TestVerifyScopes(t *testing.T) {
	t.Parallel()

	v, key := newTestVerifier(t)

	t.Run("superset of required scopes passes", func(t *testing.T) {
		c := validClaims()
		c["scope"] = "appointments/read appointments/write profile/read"
		token := signTestToken(t, key, "k1", c)

		claims, err := v.Verify(context.Background(), token, "appointments/read", "appointments/write")
		require.NoError(t, err)
		require.Contains(t, claims.Scopes(), "profile/read")
	})

	t.Run("missing scope lists exactly what is absent", func(t *testing.T) {
		c := validClaims()
		c["scope"] = "read"
		token := signTestToken(t, key, "k1", c)

		_, err := v.Verify(context.Background(), token, "write")
		var scopeErr *MissingScopeError
		require.ErrorAs(t, err, &scopeErr)
		require.Equal(t, []string{"write"}, scopeErr.Missing)
	})

	t.Run("no required scopes means no scope gate", func(t *testing.T) {
		c := validClaims()
		c["scope"] = ""
		token := signTestToken(t, key, "k1", c)

		_, err := v.Verify(context.Background(), token)
		require.NoError(t, err)
	})
}

func TestVerifyRejections(t *testing.T) {
	t.Parallel()

	v, key := newTestVerifier(t)
	stranger := testRSAKey(t)

	cases := []struct {
		name  string
		token func(t *testing.T) string
		want  error
	}{
		{
			name:  "empty token",
			token: func(t *testing.T) string { return "" },
			want:  ErrMissingToken,
		},
		{
			name:  "whitespace token",
			token: func(t *testing.T) string { return "   " },
			want:  ErrMissingToken,
		},
		{
			name: "header without kid",
			token: func(t *testing.T) string {
				return signTestToken(t, key, "", validClaims())
			},
			want: ErrMissingKID,
		},
		{
			name: "kid not in key set regardless of signature",
			token: func(t *testing.T) string {
				// Signed by a key the issuer never published.
				return signTestToken(t, stranger, "k9", validClaims())
			},
			want: ErrUnknownKID,
		},
		{
			name: "known kid but wrong signing key",
			token: func(t *testing.T) string {
				return signTestToken(t, stranger, "k1", validClaims())
			},
			want: ErrInvalidSig,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := validClaims()
				c["exp"] = time.Now().Add(-time.Minute).Unix()
				return signTestToken(t, key, "k1", c)
			},
			want: ErrExpired,
		},
		{
			name: "missing expiry claim",
			token: func(t *testing.T) string {
				c := validClaims()
				delete(c, "exp")
				return signTestToken(t, key, "k1", c)
			},
			want: ErrExpired,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				c := validClaims()
				c["iss"] = "https://evil.example"
				return signTestToken(t, key, "k1", c)
			},
			want: ErrIssuer,
		},
		{
			name: "wrong audience",
			token: func(t *testing.T) string {
				c := validClaims()
				c["aud"] = "other-client"
				return signTestToken(t, key, "k1", c)
			},
			want: ErrAudience,
		},
		{
			name: "id token rejected",
			token: func(t *testing.T) string {
				c := validClaims()
				c["token_use"] = "id"
				return signTestToken(t, key, "k1", c)
			},
			want: ErrTokenUse,
		},
		{
			name: "garbage token",
			token: func(t *testing.T) string { return "not.a.jwt" },
			want:  ErrMalformed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := v.Verify(context.Background(), tc.token(t))
			require.ErrorIs(t, err, tc.want)
			require.Empty(t, claims.Subject, "no partial claims on failure")
		})
	}
}

func TestVerifyKeyFetchFailureIsNotAuthFailure(t *testing.T) {
	t.Parallel()

	key := testRSAKey(t)
	srv := newJWKSServer(t, JWKS{})
	srv.serve(JWKS{}, http.StatusBadGateway)

	cache := NewKeyCache(KeyCacheOptions{JWKSURL: srv.URL})
	v := NewAccessVerifier(cache, testIssuer, testAudience)

	token := signTestToken(t, key, "k1", validClaims())
	_, err := v.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrKeyFetch)
	require.NotErrorIs(t, err, ErrUnknownKID)
}
