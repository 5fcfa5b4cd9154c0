package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/officemate/backend/pkg/jwtx"
	"github.com/officemate/backend/pkg/slogx"
)

// ErrMissingAuthorizationHeader reports an absent or non-Bearer
// Authorization header. It is distinct from a well-formed token that fails
// verification: the gateway rejects it before the verifier (and therefore
// the key cache) is ever consulted.
var ErrMissingAuthorizationHeader = errors.New("httpx: missing or malformed authorization header")

// AuthnMiddleware is the authentication gateway for protected endpoints. It
// extracts the bearer token, delegates to the verifier with no required
// scopes (endpoint scope checks are layered via RequireAllScopes), and
// injects the resulting Principal into the request context.
//
// Clients see a uniform 401 with a generic description; the specific failure
// kind is logged only. Transient key-fetch failures map to 503 since the
// token was never actually judged.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, err := BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(ctx, raw)
			if err != nil {
				if errors.Is(err, jwtx.ErrKeyFetch) {
					log.Error("jwks unavailable during verification", "err", err)
					WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
						"error":             "temporarily_unavailable",
						"error_description": "token verification is temporarily unavailable",
					})
					return
				}

				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			// Every downstream identity lookup keys on the subject; a
			// token without one is unusable no matter how valid.
			if claims.Subject == "" {
				log.Warn("jwt verify failed", "err", "missing sub claim")
				writeBearerError(w, "token verification failed")
				return
			}

			principal := Principal{
				SubjectID: claims.Subject,
				Username:  claims.Username,
				Scopes:    claims.Scopes(),
			}
			next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(ctx, principal)))
		})
	}
}

// BearerToken extracts the token from an Authorization header value.
// Returns ErrMissingAuthorizationHeader when the header is absent or not a
// Bearer credential.
func BearerToken(header string) (string, error) {
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", ErrMissingAuthorizationHeader
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer")), nil
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
