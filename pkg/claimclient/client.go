/**
 * @description
 * This package provides the client for the claims-service REST API: claim
 * submission and listing for customers, and the review operations used by
 * the admin claims screen.
 */
package claimclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/apiclient"
)

// Client is a client for the claims-service.
type Client struct {
	api *apiclient.Client
}

// New creates a new claims-service client.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// MyClaims returns the caller's claims.
func (c *Client) MyClaims(ctx context.Context) ([]domain.Claim, error) {
	var claims []domain.Claim
	if err := c.api.Get(ctx, "/my-claims", &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ClaimByID returns a single claim.
func (c *Client) ClaimByID(ctx context.Context, id string) (*domain.Claim, error) {
	var claim domain.Claim
	if err := c.api.Get(ctx, "/"+url.PathEscape(id), &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// Submit files a new claim.
func (c *Client) Submit(ctx context.Context, req domain.ClaimSubmitRequest) (*apiclient.ApiResponse[domain.Claim], error) {
	var resp apiclient.ApiResponse[domain.Claim]
	if err := c.api.Post(ctx, "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns one page of all claims.
func (c *Client) List(ctx context.Context, page, size int) (*apiclient.PagedResponse[domain.Claim], error) {
	var resp apiclient.PagedResponse[domain.Claim]
	if err := c.api.Get(ctx, fmt.Sprintf("?page=%d&size=%d", page, size), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ByStatus returns the claims in one review state.
func (c *Client) ByStatus(ctx context.Context, status domain.ClaimStatus) ([]domain.Claim, error) {
	var claims []domain.Claim
	if err := c.api.Get(ctx, "/status/"+url.PathEscape(string(status)), &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Pending returns the claims awaiting review.
func (c *Client) Pending(ctx context.Context) ([]domain.Claim, error) {
	var claims []domain.Claim
	if err := c.api.Get(ctx, "/pending", &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Review records an admin verdict on a claim.
func (c *Client) Review(ctx context.Context, claimID string, req domain.ClaimReviewRequest) (*apiclient.ApiResponse[domain.Claim], error) {
	var resp apiclient.ApiResponse[domain.Claim]
	if err := c.api.Put(ctx, "/"+url.PathEscape(claimID)+"/review", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Statistics returns the claim aggregate for the admin overview.
func (c *Client) Statistics(ctx context.Context) (*domain.ClaimStatistics, error) {
	var stats domain.ClaimStatistics
	if err := c.api.Get(ctx, "/statistics", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
