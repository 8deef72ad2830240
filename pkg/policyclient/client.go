/**
 * @description
 * This package provides the client for the policy-service REST API: template
 * CRUD for administration, the active-template listing for the marketplace,
 * and the customer policy operations (purchase initiation and cancellation).
 */
package policyclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/apiclient"
)

// Client is a client for the policy-service.
type Client struct {
	api *apiclient.Client
}

// New creates a new policy-service client.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// ActiveTemplates returns the templates currently offered in the
// marketplace.
func (c *Client) ActiveTemplates(ctx context.Context) ([]domain.PolicyTemplate, error) {
	var templates []domain.PolicyTemplate
	if err := c.api.Get(ctx, "/templates/active", &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// ListTemplates returns one page of templates, active or not.
func (c *Client) ListTemplates(ctx context.Context, page, size int) (*apiclient.PagedResponse[domain.PolicyTemplate], error) {
	var resp apiclient.PagedResponse[domain.PolicyTemplate]
	if err := c.api.Get(ctx, fmt.Sprintf("/templates?page=%d&size=%d", page, size), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TemplateByID returns a single template.
func (c *Client) TemplateByID(ctx context.Context, id string) (*domain.PolicyTemplate, error) {
	var template domain.PolicyTemplate
	if err := c.api.Get(ctx, "/templates/"+url.PathEscape(id), &template); err != nil {
		return nil, err
	}
	return &template, nil
}

// TemplatesByType returns the templates of one product category.
func (c *Client) TemplatesByType(ctx context.Context, policyType domain.PolicyType) ([]domain.PolicyTemplate, error) {
	var templates []domain.PolicyTemplate
	if err := c.api.Get(ctx, "/templates/type/"+url.PathEscape(string(policyType)), &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// CreateTemplate creates a new policy template.
func (c *Client) CreateTemplate(ctx context.Context, input domain.PolicyTemplateInput) (*apiclient.ApiResponse[domain.PolicyTemplate], error) {
	var resp apiclient.ApiResponse[domain.PolicyTemplate]
	if err := c.api.Post(ctx, "/templates", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTemplate applies a partial update to a template.
func (c *Client) UpdateTemplate(ctx context.Context, id string, input domain.PolicyTemplateInput) (*apiclient.ApiResponse[domain.PolicyTemplate], error) {
	var resp apiclient.ApiResponse[domain.PolicyTemplate]
	if err := c.api.Put(ctx, "/templates/"+url.PathEscape(id), input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTemplate removes a template.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	var resp apiclient.ApiResponse[struct{}]
	return c.api.Delete(ctx, "/templates/"+url.PathEscape(id), &resp)
}

// MyPolicies returns the caller's customer policies.
func (c *Client) MyPolicies(ctx context.Context) ([]domain.CustomerPolicy, error) {
	var policies []domain.CustomerPolicy
	if err := c.api.Get(ctx, "/my-policies", &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

// PolicyByID returns a single customer policy.
func (c *Client) PolicyByID(ctx context.Context, id string) (*domain.CustomerPolicy, error) {
	var policy domain.CustomerPolicy
	if err := c.api.Get(ctx, "/"+url.PathEscape(id), &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// InitiatePurchase starts a policy purchase; payment completes separately
// through the checkout session.
func (c *Client) InitiatePurchase(ctx context.Context, req domain.PolicyPurchaseRequest) (*apiclient.ApiResponse[domain.CustomerPolicy], error) {
	var resp apiclient.ApiResponse[domain.CustomerPolicy]
	if err := c.api.Post(ctx, "/purchase/initiate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Cancel requests cancellation of a customer policy.
func (c *Client) Cancel(ctx context.Context, policyID string) error {
	var resp apiclient.ApiResponse[struct{}]
	return c.api.Put(ctx, "/"+url.PathEscape(policyID)+"/cancel", nil, &resp)
}

// Statistics returns the policy aggregate for the admin overview.
func (c *Client) Statistics(ctx context.Context) (*domain.PolicyStatistics, error) {
	var stats domain.PolicyStatistics
	if err := c.api.Get(ctx, "/statistics", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
