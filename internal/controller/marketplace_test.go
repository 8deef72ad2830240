package controller

import (
	"context"
	"testing"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

func TestMarketplaceTypeFilterRederivesFromFullListing(t *testing.T) {
	policies := &fakePolicyAPI{templates: templateFixture()}
	c := NewMarketplace(policies, &fakePaymentAPI{})
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	c.SetFilter(string(domain.PolicyLife))
	if got := len(c.State().Policies); got != 2 {
		t.Fatalf("expected 2 LIFE templates, got %d", got)
	}
	c.SetFilter(FilterAll)
	if got := len(c.State().Policies); got != 3 {
		t.Fatalf("expected the full listing back, got %d", got)
	}
	if policies.activeCalls != 1 {
		t.Fatalf("expected filtering to stay client-side, got %d fetches", policies.activeCalls)
	}
}

func TestMarketplaceCheckoutReturnsHostedSessionURL(t *testing.T) {
	policies := &fakePolicyAPI{templates: templateFixture()}
	payments := &fakePaymentAPI{sessionURL: "https://pay.example.com/session/abc"}
	c := NewMarketplace(policies, payments)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	template, _ := c.TemplateByID("t2")
	c.OpenPurchase(template)
	url, err := c.BeginCheckout(context.Background())
	if err != nil {
		t.Fatalf("BeginCheckout returned error: %v", err)
	}

	if url != "https://pay.example.com/session/abc" {
		t.Fatalf("unexpected session URL %q", url)
	}
	if payments.lastCheckout.PolicyTemplateID != "t2" {
		t.Fatalf("unexpected checkout payload: %+v", payments.lastCheckout)
	}
	// The user is away on the hosted page; processing stays set until the
	// modal closes on return.
	if !c.State().Processing {
		t.Fatal("expected processing to stay set after handoff")
	}
}

func TestMarketplaceCheckoutFailureAllowsRetry(t *testing.T) {
	policies := &fakePolicyAPI{templates: templateFixture()}
	payments := &fakePaymentAPI{fail: true}
	c := NewMarketplace(policies, payments)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	template, _ := c.TemplateByID("t1")
	c.OpenPurchase(template)
	if _, err := c.BeginCheckout(context.Background()); err == nil {
		t.Fatal("expected the payment failure to surface")
	}

	state := c.State()
	if state.Feedback != "Payment failed. Please try again." {
		t.Fatalf("unexpected feedback %q", state.Feedback)
	}
	if state.Processing {
		t.Fatal("expected processing to clear for a retry")
	}
	if state.Mode != ModePurchase {
		t.Fatalf("expected the modal to stay open, got mode %q", state.Mode)
	}

	// Retry succeeds once the backend recovers.
	payments.fail = false
	payments.sessionURL = "https://pay.example.com/session/retry"
	url, err := c.BeginCheckout(context.Background())
	if err != nil {
		t.Fatalf("retry returned error: %v", err)
	}
	if url != "https://pay.example.com/session/retry" {
		t.Fatalf("unexpected session URL %q", url)
	}
}

func TestMarketplaceCheckoutWithoutOpenModalIsANoop(t *testing.T) {
	policies := &fakePolicyAPI{templates: templateFixture()}
	payments := &fakePaymentAPI{sessionURL: "https://pay.example.com/session/abc"}
	c := NewMarketplace(policies, payments)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	url, err := c.BeginCheckout(context.Background())
	if err != nil {
		t.Fatalf("BeginCheckout returned error: %v", err)
	}
	if url != "" || payments.checkoutCalls != 0 {
		t.Fatalf("expected no checkout without an open modal, got url %q and %d calls", url, payments.checkoutCalls)
	}
}

func TestMarketplaceClosePurchaseReloads(t *testing.T) {
	policies := &fakePolicyAPI{templates: templateFixture()}
	c := NewMarketplace(policies, &fakePaymentAPI{sessionURL: "https://pay.example.com/s"})
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	template, _ := c.TemplateByID("t1")
	c.OpenPurchase(template)
	if _, err := c.BeginCheckout(context.Background()); err != nil {
		t.Fatalf("BeginCheckout returned error: %v", err)
	}
	if err := c.ClosePurchase(context.Background()); err != nil {
		t.Fatalf("ClosePurchase returned error: %v", err)
	}

	if policies.activeCalls != 2 {
		t.Fatalf("expected a reload on return from checkout, got %d fetches", policies.activeCalls)
	}
	state := c.State()
	if state.Mode != ModeNone || state.Processing || state.Selected != nil {
		t.Fatalf("expected a fully reset modal, got %+v", state)
	}
}
