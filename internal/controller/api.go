/**
 * @description
 * This file declares the slices of the resource clients that the screen
 * controllers depend on. Controllers program against these interfaces so
 * tests can substitute fake backends; the pkg/*client types satisfy them.
 */
package controller

import (
	"context"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/apiclient"
)

// UserAPI is the slice of the user-service used by the screens.
type UserAPI interface {
	List(ctx context.Context, page, size int) (*apiclient.PagedResponse[domain.User], error)
	Register(ctx context.Context, req domain.UserRegistrationRequest) (*apiclient.ApiResponse[domain.User], error)
	Deactivate(ctx context.Context, userID string) error
	Statistics(ctx context.Context) (*domain.UserStatistics, error)
}

// PolicyAPI is the slice of the policy-service used by the screens.
type PolicyAPI interface {
	ActiveTemplates(ctx context.Context) ([]domain.PolicyTemplate, error)
	ListTemplates(ctx context.Context, page, size int) (*apiclient.PagedResponse[domain.PolicyTemplate], error)
	CreateTemplate(ctx context.Context, input domain.PolicyTemplateInput) (*apiclient.ApiResponse[domain.PolicyTemplate], error)
	UpdateTemplate(ctx context.Context, id string, input domain.PolicyTemplateInput) (*apiclient.ApiResponse[domain.PolicyTemplate], error)
	DeleteTemplate(ctx context.Context, id string) error
	MyPolicies(ctx context.Context) ([]domain.CustomerPolicy, error)
	Cancel(ctx context.Context, policyID string) error
	Statistics(ctx context.Context) (*domain.PolicyStatistics, error)
}

// ClaimAPI is the slice of the claims-service used by the screens.
type ClaimAPI interface {
	MyClaims(ctx context.Context) ([]domain.Claim, error)
	Submit(ctx context.Context, req domain.ClaimSubmitRequest) (*apiclient.ApiResponse[domain.Claim], error)
	List(ctx context.Context, page, size int) (*apiclient.PagedResponse[domain.Claim], error)
	Review(ctx context.Context, claimID string, req domain.ClaimReviewRequest) (*apiclient.ApiResponse[domain.Claim], error)
	Statistics(ctx context.Context) (*domain.ClaimStatistics, error)
}

// PaymentAPI is the slice of the payment-service used by the screens.
type PaymentAPI interface {
	CreateCheckoutSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.CheckoutSessionResponse, error)
	Statistics(ctx context.Context) (*domain.TransactionStatistics, error)
}
