package controller

import (
	"context"
	"errors"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/apiclient"
)

var errBackend = errors.New("backend unavailable")

// fakePolicyAPI implements PolicyAPI with canned results and call counters.
type fakePolicyAPI struct {
	templates    []domain.PolicyTemplate
	myPolicies   []domain.CustomerPolicy
	stats        *domain.PolicyStatistics
	failListing  bool
	failMutation bool

	listCalls     int
	activeCalls   int
	createCalls   int
	updateCalls   int
	deleteCalls   int
	cancelCalls   int
	myPolicyCalls int

	lastCreate   domain.PolicyTemplateInput
	lastUpdateID string
	lastUpdate   domain.PolicyTemplateInput
	lastCancelID string
}

func (f *fakePolicyAPI) ActiveTemplates(ctx context.Context) ([]domain.PolicyTemplate, error) {
	f.activeCalls++
	if f.failListing {
		return nil, errBackend
	}
	return f.templates, nil
}

func (f *fakePolicyAPI) ListTemplates(ctx context.Context, page, size int) (*apiclient.PagedResponse[domain.PolicyTemplate], error) {
	f.listCalls++
	if f.failListing {
		return nil, errBackend
	}
	return &apiclient.PagedResponse[domain.PolicyTemplate]{
		Content:       f.templates,
		TotalElements: int64(len(f.templates)),
	}, nil
}

func (f *fakePolicyAPI) CreateTemplate(ctx context.Context, input domain.PolicyTemplateInput) (*apiclient.ApiResponse[domain.PolicyTemplate], error) {
	f.createCalls++
	f.lastCreate = input
	if f.failMutation {
		return nil, errBackend
	}
	return &apiclient.ApiResponse[domain.PolicyTemplate]{Success: true}, nil
}

func (f *fakePolicyAPI) UpdateTemplate(ctx context.Context, id string, input domain.PolicyTemplateInput) (*apiclient.ApiResponse[domain.PolicyTemplate], error) {
	f.updateCalls++
	f.lastUpdateID = id
	f.lastUpdate = input
	if f.failMutation {
		return nil, errBackend
	}
	return &apiclient.ApiResponse[domain.PolicyTemplate]{Success: true}, nil
}

func (f *fakePolicyAPI) DeleteTemplate(ctx context.Context, id string) error {
	f.deleteCalls++
	if f.failMutation {
		return errBackend
	}
	return nil
}

func (f *fakePolicyAPI) MyPolicies(ctx context.Context) ([]domain.CustomerPolicy, error) {
	f.myPolicyCalls++
	if f.failListing {
		return nil, errBackend
	}
	return f.myPolicies, nil
}

func (f *fakePolicyAPI) Cancel(ctx context.Context, policyID string) error {
	f.cancelCalls++
	f.lastCancelID = policyID
	if f.failMutation {
		return errBackend
	}
	return nil
}

func (f *fakePolicyAPI) Statistics(ctx context.Context) (*domain.PolicyStatistics, error) {
	if f.failListing {
		return nil, errBackend
	}
	return f.stats, nil
}

// fakeClaimAPI implements ClaimAPI with canned results and call counters.
type fakeClaimAPI struct {
	claims       []domain.Claim
	stats        *domain.ClaimStatistics
	failListing  bool
	failMutation bool

	listCalls   int
	myCalls     int
	submitCalls int
	reviewCalls int

	lastSubmit   domain.ClaimSubmitRequest
	lastReviewID string
	lastReview   domain.ClaimReviewRequest
}

func (f *fakeClaimAPI) MyClaims(ctx context.Context) ([]domain.Claim, error) {
	f.myCalls++
	if f.failListing {
		return nil, errBackend
	}
	return f.claims, nil
}

func (f *fakeClaimAPI) Submit(ctx context.Context, req domain.ClaimSubmitRequest) (*apiclient.ApiResponse[domain.Claim], error) {
	f.submitCalls++
	f.lastSubmit = req
	if f.failMutation {
		return nil, errBackend
	}
	return &apiclient.ApiResponse[domain.Claim]{Success: true, Message: "Claim filed"}, nil
}

func (f *fakeClaimAPI) List(ctx context.Context, page, size int) (*apiclient.PagedResponse[domain.Claim], error) {
	f.listCalls++
	if f.failListing {
		return nil, errBackend
	}
	claims := f.claims
	if size < len(claims) {
		claims = claims[:size]
	}
	return &apiclient.PagedResponse[domain.Claim]{
		Content:       claims,
		TotalElements: int64(len(f.claims)),
	}, nil
}

func (f *fakeClaimAPI) Review(ctx context.Context, claimID string, req domain.ClaimReviewRequest) (*apiclient.ApiResponse[domain.Claim], error) {
	f.reviewCalls++
	f.lastReviewID = claimID
	f.lastReview = req
	if f.failMutation {
		return nil, errBackend
	}
	return &apiclient.ApiResponse[domain.Claim]{Success: true}, nil
}

func (f *fakeClaimAPI) Statistics(ctx context.Context) (*domain.ClaimStatistics, error) {
	if f.failListing {
		return nil, errBackend
	}
	return f.stats, nil
}

// fakeUserAPI implements UserAPI with canned results and call counters.
type fakeUserAPI struct {
	users        []domain.User
	stats        *domain.UserStatistics
	failListing  bool
	failMutation bool

	listCalls       int
	registerCalls   int
	deactivateCalls int

	lastRegister     domain.UserRegistrationRequest
	lastDeactivateID string
}

func (f *fakeUserAPI) List(ctx context.Context, page, size int) (*apiclient.PagedResponse[domain.User], error) {
	f.listCalls++
	if f.failListing {
		return nil, errBackend
	}
	return &apiclient.PagedResponse[domain.User]{
		Content:       f.users,
		TotalElements: int64(len(f.users)),
	}, nil
}

func (f *fakeUserAPI) Register(ctx context.Context, req domain.UserRegistrationRequest) (*apiclient.ApiResponse[domain.User], error) {
	f.registerCalls++
	f.lastRegister = req
	if f.failMutation {
		return nil, errBackend
	}
	return &apiclient.ApiResponse[domain.User]{Success: true}, nil
}

func (f *fakeUserAPI) Deactivate(ctx context.Context, userID string) error {
	f.deactivateCalls++
	f.lastDeactivateID = userID
	if f.failMutation {
		return errBackend
	}
	return nil
}

func (f *fakeUserAPI) Statistics(ctx context.Context) (*domain.UserStatistics, error) {
	if f.failListing {
		return nil, errBackend
	}
	return f.stats, nil
}

// fakePaymentAPI implements PaymentAPI with canned results and call counters.
type fakePaymentAPI struct {
	sessionURL string
	stats      *domain.TransactionStatistics
	fail       bool

	checkoutCalls int
	lastCheckout  domain.CheckoutSessionRequest
}

func (f *fakePaymentAPI) CreateCheckoutSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.CheckoutSessionResponse, error) {
	f.checkoutCalls++
	f.lastCheckout = req
	if f.fail {
		return nil, errBackend
	}
	return &domain.CheckoutSessionResponse{SessionURL: f.sessionURL}, nil
}

func (f *fakePaymentAPI) Statistics(ctx context.Context) (*domain.TransactionStatistics, error) {
	if f.fail {
		return nil, errBackend
	}
	return f.stats, nil
}
