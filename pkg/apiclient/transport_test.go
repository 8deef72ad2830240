package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTransportAttachesJSONHeadersAndSessionCookie(t *testing.T) {
	var gotContentType, gotAccept, gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		if cookie, err := r.Cookie("EINSURANCE_SESSION"); err == nil {
			gotCookie = cookie.Value
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := &http.Client{Transport: &Transport{}}
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	ctx := WithSessionCookie(req.Context(), &http.Cookie{Name: "EINSURANCE_SESSION", Value: "abc123"})
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if gotContentType != "application/json" {
		t.Fatalf("expected JSON content type, got %q", gotContentType)
	}
	if gotAccept != "application/json" {
		t.Fatalf("expected JSON accept header, got %q", gotAccept)
	}
	if gotCookie != "abc123" {
		t.Fatalf("expected session cookie to be forwarded, got %q", gotCookie)
	}
}

func TestTransportDoesNotAttachCookieWithoutOne(t *testing.T) {
	var cookieCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieCount = len(r.Cookies())
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := &http.Client{Transport: &Transport{}}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if cookieCount != 0 {
		t.Fatalf("expected no cookies on the outbound request, got %d", cookieCount)
	}
}

func TestTransportFiresUnauthorizedHookOncePer401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	var hookCalls int
	transport := &Transport{OnUnauthorized: func(ctx context.Context) { hookCalls++ }}

	api := New(server.URL, transport)
	err := api.Get(context.Background(), "/me", nil)
	if err == nil {
		t.Fatal("expected the 401 to surface as an error")
	}
	if !IsUnauthorized(err) {
		t.Fatalf("expected an unauthorized error, got %v", err)
	}
	if hookCalls != 1 {
		t.Fatalf("expected the hook to fire once, fired %d times", hookCalls)
	}
}

func TestTransportLeavesOtherStatusesAlone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var hookCalls int
	transport := &Transport{OnUnauthorized: func(ctx context.Context) { hookCalls++ }}

	api := New(server.URL, transport)
	err := api.Get(context.Background(), "/missing", nil)
	if !IsNotFound(err) {
		t.Fatalf("expected a not-found error, got %v", err)
	}
	if hookCalls != 0 {
		t.Fatalf("expected the hook to stay silent on a 404, fired %d times", hookCalls)
	}
}
