package controller

import (
	"context"
	"testing"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

func TestMyPoliciesCancelOnlyOffersCancellableStatuses(t *testing.T) {
	tests := []struct {
		status     domain.PolicyStatus
		wantsModal bool
	}{
		{status: domain.PolicyActive, wantsModal: true},
		{status: domain.PolicyPending, wantsModal: true},
		{status: domain.PolicyCancelled, wantsModal: false},
		{status: domain.PolicyExpired, wantsModal: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			api := &fakePolicyAPI{myPolicies: []domain.CustomerPolicy{{ID: "p1", Status: tt.status}}}
			c := NewMyPolicies(api)
			if err := c.Load(context.Background()); err != nil {
				t.Fatalf("Load returned error: %v", err)
			}

			policy, _ := c.PolicyByID("p1")
			c.OpenCancel(policy)

			state := c.State()
			if tt.wantsModal && state.Mode != ModeCancelConfirm {
				t.Fatalf("expected the confirmation to open for %s, got mode %q", tt.status, state.Mode)
			}
			if !tt.wantsModal && state.Mode != ModeNone {
				t.Fatalf("expected no confirmation for %s, got mode %q", tt.status, state.Mode)
			}
		})
	}
}

func TestMyPoliciesConfirmCancelReloads(t *testing.T) {
	api := &fakePolicyAPI{myPolicies: []domain.CustomerPolicy{{ID: "p1", Status: domain.PolicyActive}}}
	c := NewMyPolicies(api)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	policy, _ := c.PolicyByID("p1")
	c.OpenCancel(policy)
	if err := c.ConfirmCancel(context.Background()); err != nil {
		t.Fatalf("ConfirmCancel returned error: %v", err)
	}

	if api.lastCancelID != "p1" {
		t.Fatalf("expected cancellation of p1, got %q", api.lastCancelID)
	}
	if api.myPolicyCalls != 2 {
		t.Fatalf("expected a reload after the cancellation, got %d calls", api.myPolicyCalls)
	}
	state := c.State()
	if state.Feedback != "Policy cancelled successfully." {
		t.Fatalf("unexpected feedback %q", state.Feedback)
	}
	if state.Mode != ModeNone {
		t.Fatalf("expected the confirmation to close, got mode %q", state.Mode)
	}
}

func TestMyPoliciesConfirmCancelWithoutSelectionIsANoop(t *testing.T) {
	api := &fakePolicyAPI{myPolicies: []domain.CustomerPolicy{{ID: "p1", Status: domain.PolicyActive}}}
	c := NewMyPolicies(api)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := c.ConfirmCancel(context.Background()); err != nil {
		t.Fatalf("ConfirmCancel returned error: %v", err)
	}
	if api.cancelCalls != 0 {
		t.Fatalf("expected no backend call without a selection, got %d", api.cancelCalls)
	}
}

func TestMyPoliciesCancelFailureKeepsConfirmationOpen(t *testing.T) {
	api := &fakePolicyAPI{
		myPolicies:   []domain.CustomerPolicy{{ID: "p1", Status: domain.PolicyActive}},
		failMutation: true,
	}
	c := NewMyPolicies(api)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	policy, _ := c.PolicyByID("p1")
	c.OpenCancel(policy)
	if err := c.ConfirmCancel(context.Background()); err == nil {
		t.Fatal("expected the backend failure to surface")
	}

	state := c.State()
	if state.Feedback != "Failed to cancel policy." {
		t.Fatalf("unexpected feedback %q", state.Feedback)
	}
	if state.Mode != ModeCancelConfirm {
		t.Fatalf("expected the confirmation to stay open, got mode %q", state.Mode)
	}
}
