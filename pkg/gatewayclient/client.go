/**
 * @description
 * This package provides the client for the API gateway's session endpoints.
 * Login happens through an external identity-provider redirect; the gateway
 * only exposes logout to the portal.
 */
package gatewayclient

import (
	"context"

	"github.com/bobijackrussel/e-insurance-microservice/pkg/apiclient"
)

// Client is a client for the API gateway.
type Client struct {
	api *apiclient.Client
}

// New creates a new gateway client.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Logout terminates the backend session behind the ambient cookie.
func (c *Client) Logout(ctx context.Context) error {
	return c.api.Post(ctx, "/logout", nil, nil)
}
