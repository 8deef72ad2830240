/**
 * @description
 * This file implements the my-policies screen: the caller's policies with a
 * cancel confirmation dialog. Cancellation may only be requested for a
 * policy that is still ACTIVE or PENDING; the backend owns every other
 * status transition.
 */
package controller

import (
	"context"
	"log"
	"sync"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

// MyPolicies is the view-state controller for the my-policies screen.
type MyPolicies struct {
	mu       sync.Mutex
	view     listView[domain.CustomerPolicy]
	policies PolicyAPI

	selectedPolicyID string
}

// MyPoliciesState is the renderable snapshot of the screen.
type MyPoliciesState struct {
	Policies         []domain.CustomerPolicy `json:"policies"`
	State            LoadState               `json:"state"`
	Error            string                  `json:"error,omitempty"`
	Mode             Mode                    `json:"mode"`
	SelectedPolicyID string                  `json:"selectedPolicyId,omitempty"`
	Submitting       bool                    `json:"submitting"`
	Feedback         string                  `json:"feedback,omitempty"`
}

// NewMyPolicies creates the controller in its idle state.
func NewMyPolicies(policies PolicyAPI) *MyPolicies {
	return &MyPolicies{
		view:     listView[domain.CustomerPolicy]{state: StateIdle},
		policies: policies,
	}
}

// Load fetches the caller's policies.
func (c *MyPolicies) Load(ctx context.Context) error {
	err := loadInto(ctx, &c.mu, &c.view, c.policies.MyPolicies,
		"Unable to load your policies.", nil)
	if err != nil {
		log.Printf("Error loading policies: %v", err)
	}
	return err
}

// PolicyByID returns the loaded policy with the given id.
func (c *MyPolicies) PolicyByID(id string) (domain.CustomerPolicy, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, policy := range c.view.items {
		if policy.ID == id {
			return policy, true
		}
	}
	return domain.CustomerPolicy{}, false
}

// OpenCancel opens the cancel confirmation for a policy. Policies that are
// already CANCELLED or EXPIRED are refused.
func (c *MyPolicies) OpenCancel(policy domain.CustomerPolicy) {
	if !policy.Status.Cancellable() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedPolicyID = policy.ID
	c.view.openModal(ModeCancelConfirm)
}

// CloseCancel dismisses the confirmation dialog.
func (c *MyPolicies) CloseCancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedPolicyID = ""
	c.view.closeModal()
}

// ConfirmCancel requests cancellation of the selected policy and reloads.
func (c *MyPolicies) ConfirmCancel(ctx context.Context) error {
	c.mu.Lock()
	if c.view.mode != ModeCancelConfirm || c.view.submitting || c.selectedPolicyID == "" {
		c.mu.Unlock()
		return nil
	}
	policyID := c.selectedPolicyID
	c.view.submitting = true
	c.mu.Unlock()

	err := c.policies.Cancel(ctx, policyID)

	c.mu.Lock()
	c.view.submitting = false
	if err != nil {
		log.Printf("Error cancelling policy: %v", err)
		c.view.feedback = "Failed to cancel policy."
		c.mu.Unlock()
		return err
	}
	c.view.feedback = "Policy cancelled successfully."
	c.selectedPolicyID = ""
	c.view.closeModal()
	c.mu.Unlock()
	return c.Load(ctx)
}

// State returns a renderable snapshot of the screen.
func (c *MyPolicies) State() MyPoliciesState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MyPoliciesState{
		Policies:         append([]domain.CustomerPolicy(nil), c.view.filtered...),
		State:            c.view.state,
		Error:            c.view.loadError,
		Mode:             c.view.mode,
		SelectedPolicyID: c.selectedPolicyID,
		Submitting:       c.view.submitting,
		Feedback:         c.view.feedback,
	}
}
