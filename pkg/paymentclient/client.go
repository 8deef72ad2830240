/**
 * @description
 * This package provides the client for the payment-service REST API. The
 * portal only ever requests a hosted checkout session and reads transaction
 * history; payment processing itself is external.
 */
package paymentclient

import (
	"context"
	"net/url"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/apiclient"
)

// Client is a client for the payment-service.
type Client struct {
	api *apiclient.Client
}

// New creates a new payment-service client.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// CreateCheckoutSession requests a hosted checkout session for a template
// purchase. The caller redirects the user to the returned session URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.CheckoutSessionResponse, error) {
	var resp domain.CheckoutSessionResponse
	if err := c.api.Post(ctx, "/create-checkout-session", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TransactionByID returns a single transaction.
func (c *Client) TransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var tx domain.Transaction
	if err := c.api.Get(ctx, "/transactions/"+url.PathEscape(id), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// MyTransactions returns the caller's transactions.
func (c *Client) MyTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := c.api.Get(ctx, "/my-transactions", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// ListTransactions returns every transaction, for administration.
func (c *Client) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := c.api.Get(ctx, "/transactions", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Statistics returns the transaction aggregate for the admin overview.
func (c *Client) Statistics(ctx context.Context) (*domain.TransactionStatistics, error) {
	var stats domain.TransactionStatistics
	if err := c.api.Get(ctx, "/statistics", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
