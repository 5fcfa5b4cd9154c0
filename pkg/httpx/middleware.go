// Package httpx holds HTTP plumbing shared by all handlers: the bearer-token
// gateway, scope checks, rate limiting and response helpers.
package httpx

import "net/http"

// Middleware wraps an http.Handler with additional behaviour.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares so the first listed is outermost. Given
// Chain(h, authn, scopes, limit), a request passes authn, then scopes, then
// limit, then reaches h.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
