/**
 * @description
 * This file provides the shared HTTP client used by every resource client.
 * It encapsulates request building, JSON encoding/decoding, and error
 * surfacing so resource clients stay one-method-per-endpoint façades.
 *
 * @notes
 * - A default timeout prevents calls from hanging indefinitely; there is no
 *   portal-level timeout logic beyond it.
 * - Failed calls (status >= 400) return *Error with the raw body; bodies are
 *   never interpreted here.
 */
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client is a JSON-over-HTTP client bound to one backend base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL. All requests pass through
// transport, which carries the session interceptor.
func New(baseURL string, transport http.RoundTripper) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
	}
}

// Get issues a GET and decodes the response into out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body. A nil in sends an empty JSON object,
// matching what the backends expect from body-less POSTs.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

// Delete issues a DELETE and decodes the response into out when out is
// non-nil.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if method == http.MethodPost || method == http.MethodPut {
		payload := in
		if payload == nil {
			payload = struct{}{}
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return newError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// newError reads the body of a failed call into an *Error. The body is
// capped so a misbehaving backend cannot flood logs.
func newError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	if err != nil {
		return &Error{StatusCode: resp.StatusCode, Body: "(unreadable response body)"}
	}
	return &Error{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
}
