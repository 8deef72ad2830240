/**
 * @description
 * This package provides the client for the user-service REST API. Each
 * method maps to exactly one endpoint; request and response bodies are typed
 * against the domain records and backend errors are passed through
 * unmodified.
 */
package userclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/apiclient"
)

// Client is a client for the user-service.
type Client struct {
	api *apiclient.Client
}

// New creates a new user-service client.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// CurrentUser returns the identity behind the ambient session cookie.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.api.Get(ctx, "/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register links a Keycloak identity to a new portal profile.
func (c *Client) Register(ctx context.Context, req domain.UserRegistrationRequest) (*apiclient.ApiResponse[domain.User], error) {
	var resp apiclient.ApiResponse[domain.User]
	if err := c.api.Post(ctx, "/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile returns a single user by id.
func (c *Client) Profile(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	if err := c.api.Get(ctx, "/"+url.PathEscape(userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the editable profile fields of a user.
func (c *Client) UpdateProfile(ctx context.Context, userID string, update domain.UserUpdate) (*apiclient.ApiResponse[domain.User], error) {
	var resp apiclient.ApiResponse[domain.User]
	if err := c.api.Put(ctx, "/"+url.PathEscape(userID), update, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns one page of users.
func (c *Client) List(ctx context.Context, page, size int) (*apiclient.PagedResponse[domain.User], error) {
	var resp apiclient.PagedResponse[domain.User]
	if err := c.api.Get(ctx, fmt.Sprintf("?page=%d&size=%d", page, size), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search returns users matching the backend's free-text search.
func (c *Client) Search(ctx context.Context, term string) ([]domain.User, error) {
	var users []domain.User
	if err := c.api.Get(ctx, "/search?q="+url.QueryEscape(term), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Deactivate disables a user account.
func (c *Client) Deactivate(ctx context.Context, userID string) error {
	var resp apiclient.ApiResponse[struct{}]
	return c.api.Delete(ctx, "/"+url.PathEscape(userID), &resp)
}

// Statistics returns the user aggregate for the admin overview.
func (c *Client) Statistics(ctx context.Context) (*domain.UserStatistics, error) {
	var stats domain.UserStatistics
	if err := c.api.Get(ctx, "/statistics", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
