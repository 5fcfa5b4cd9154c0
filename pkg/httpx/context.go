package httpx

import "context"

type ctxKey string

const (
	// CtxKeyPrincipal carries the authenticated Principal.
	CtxKeyPrincipal ctxKey = "principal"

	// CtxKeyUserID duplicates the principal's subject for cheap access by
	// infrastructure that only needs an identity string (rate limiting).
	CtxKeyUserID ctxKey = "user_id"
)

// Principal is the authenticated caller as seen by handlers. It is derived
// 1:1 from verified token claims and carries no authority of its own; the
// subject is the only identity used to look up domain records.
type Principal struct {
	// SubjectID is the token's sub claim (the identity provider's user id).
	SubjectID string

	// Username is the provider's login name when the token carries one.
	Username string

	// Scopes are the granted scope names from the token.
	Scopes []string
}

// HasScope reports whether the principal was granted the named scope.
func (p Principal) HasScope(scope string) bool {
	for _, s := range p.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// ContextWithPrincipal attaches an authenticated principal to the context.
// Only AuthnMiddleware should call this outside of tests.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyPrincipal, p)
	ctx = context.WithValue(ctx, CtxKeyUserID, p.SubjectID)
	return ctx
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(Principal)
	return p, ok
}
