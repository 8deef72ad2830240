/**
 * @description
 * This file carries the login-redirect signal from the request interceptor
 * back to the handler that is about to render. The interceptor's 401 hook
 * runs deep inside an outbound call; it flags the request context and the
 * handler turns the flag into an HTTP redirect to the login route instead
 * of a rendered screen. The failed call itself still reaches the
 * controller, which keeps its recoverable error state.
 */
package web

import (
	"context"
	"sync"
)

type redirectKey struct{}

// loginRedirect is a per-request flag set by the unauthorized hook.
type loginRedirect struct {
	mu        sync.Mutex
	requested bool
}

// WithLoginRedirect installs a fresh redirect flag on the request context.
func WithLoginRedirect(ctx context.Context) context.Context {
	return context.WithValue(ctx, redirectKey{}, &loginRedirect{})
}

// RequestLoginRedirect marks the request for a login redirect. It is wired
// as the interceptor's unauthorized hook.
func RequestLoginRedirect(ctx context.Context) {
	flag, _ := ctx.Value(redirectKey{}).(*loginRedirect)
	if flag == nil {
		return
	}
	flag.mu.Lock()
	flag.requested = true
	flag.mu.Unlock()
}

// LoginRedirectRequested reports whether any call during this request hit a
// 401.
func LoginRedirectRequested(ctx context.Context) bool {
	flag, _ := ctx.Value(redirectKey{}).(*loginRedirect)
	if flag == nil {
		return false
	}
	flag.mu.Lock()
	defer flag.mu.Unlock()
	return flag.requested
}
