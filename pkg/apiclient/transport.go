/**
 * @description
 * This file implements the session/request interceptor applied to every
 * outbound backend call. The request phase attaches the ambient session
 * cookie and forces JSON content negotiation; the response phase fires the
 * unauthorized hook on 401 responses and otherwise passes everything through
 * untouched. There is no retry and no backoff; callers always see the
 * original outcome.
 *
 * @notes
 * - The session cookie travels in the request context so one shared
 *   transport serves every signed-in portal session.
 * - The unauthorized hook fires exactly once per 401 response; the error is
 *   still surfaced to the caller by the client layer.
 */
package apiclient

import (
	"context"
	"net/http"
)

type contextKey string

const sessionCookieKey contextKey = "sessionCookie"

// WithSessionCookie returns a context carrying the ambient session cookie
// to attach to outbound backend calls.
func WithSessionCookie(ctx context.Context, cookie *http.Cookie) context.Context {
	return context.WithValue(ctx, sessionCookieKey, cookie)
}

// SessionCookieFromContext returns the ambient session cookie, if any.
func SessionCookieFromContext(ctx context.Context) *http.Cookie {
	cookie, _ := ctx.Value(sessionCookieKey).(*http.Cookie)
	return cookie
}

// Transport decorates an http.RoundTripper with credential forwarding and
// centralized 401 handling.
type Transport struct {
	// Base is the underlying round tripper. http.DefaultTransport when nil.
	Base http.RoundTripper

	// OnUnauthorized is invoked once for every 401 response, before the
	// response is returned to the caller. Typically it schedules a redirect
	// to the login route.
	OnUnauthorized func(ctx context.Context)
}

// RoundTrip clones the request, attaches the session cookie and JSON
// headers, and forwards it. The body, method and URL are never altered.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Content-Type", "application/json")
	clone.Header.Set("Accept", "application/json")
	if cookie := SessionCookieFromContext(clone.Context()); cookie != nil {
		clone.AddCookie(cookie)
	}

	resp, err := t.base().RoundTrip(clone)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.OnUnauthorized != nil {
		t.OnUnauthorized(clone.Context())
	}

	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
