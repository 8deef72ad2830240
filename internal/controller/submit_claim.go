/**
 * @description
 * This file implements the submit-claim screen: the caller's policies feed
 * the policy picker (ACTIVE ones only) and a working form collects the
 * claim details. Structural validation runs entirely client-side; a blocked
 * submit never reaches the network.
 */
package controller

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

// ClaimForm is the working form for filing a claim. Amount stays a string
// until validation parses it.
type ClaimForm struct {
	CustomerPolicyID string `json:"customerPolicyId"`
	IncidentDate     string `json:"incidentDate"`
	Amount           string `json:"amount"`
	Description      string `json:"description"`
	formState
}

var claimFormFields = []string{"customerPolicyId", "incidentDate", "amount", "description"}

// validate checks the structural rules and returns the parsed amount.
func (f *ClaimForm) validate() (float64, bool) {
	f.Errors = nil
	f.checkRequired("customerPolicyId", f.CustomerPolicyID)
	f.checkRequired("incidentDate", f.IncidentDate)
	f.checkRequired("amount", f.Amount)
	f.checkMinLength("description", f.Description, 10)
	amount := f.parsePositiveAmount("amount", f.Amount, markerInvalidAmount)
	if f.invalid() {
		f.touchAll(claimFormFields...)
		return 0, false
	}
	return amount, true
}

// SubmitClaim is the view-state controller for the submit-claim screen.
type SubmitClaim struct {
	mu       sync.Mutex
	policies listView[domain.CustomerPolicy]
	policy   PolicyAPI
	claims   ClaimAPI

	form       ClaimForm
	submitting bool
	success    string
	failure    string
}

// SubmitClaimState is the renderable snapshot of the screen.
type SubmitClaimState struct {
	Policies       []domain.CustomerPolicy `json:"policies"`
	ActivePolicies []domain.CustomerPolicy `json:"activePolicies"`
	PoliciesState  LoadState               `json:"policiesState"`
	PoliciesError  string                  `json:"policiesError,omitempty"`
	Form           ClaimForm               `json:"form"`
	Submitting     bool                    `json:"submitting"`
	SuccessMessage string                  `json:"successMessage,omitempty"`
	ErrorMessage   string                  `json:"errorMessage,omitempty"`
}

// NewSubmitClaim creates the controller in its idle state.
func NewSubmitClaim(policy PolicyAPI, claims ClaimAPI) *SubmitClaim {
	return &SubmitClaim{
		policies: listView[domain.CustomerPolicy]{state: StateIdle},
		policy:   policy,
		claims:   claims,
	}
}

// LoadPolicies fetches the caller's policies for the picker.
func (c *SubmitClaim) LoadPolicies(ctx context.Context) error {
	err := loadInto(ctx, &c.mu, &c.policies, c.policy.MyPolicies,
		"We could not load your policies. Please try again later.", nil)
	if err != nil {
		log.Printf("Error loading policies: %v", err)
	}
	return err
}

// SetForm replaces the working form fields with the user's latest input.
func (c *SubmitClaim) SetForm(form ClaimForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	form.formState = formState{}
	c.form = form
}

// Submit validates the form and files the claim. A validation failure marks
// the offending fields and makes no backend call; success clears the form.
func (c *SubmitClaim) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil
	}
	amount, ok := c.form.validate()
	if !ok {
		c.mu.Unlock()
		return nil
	}
	req := domain.ClaimSubmitRequest{
		CustomerPolicyID: c.form.CustomerPolicyID,
		Amount:           amount,
		Description:      strings.TrimSpace(c.form.Description),
		IncidentDate:     c.form.IncidentDate,
	}
	c.submitting = true
	c.success = ""
	c.failure = ""
	c.mu.Unlock()

	resp, err := c.claims.Submit(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		log.Printf("Error submitting claim: %v", err)
		c.failure = "Failed to submit claim. Please try again."
		return err
	}
	if resp != nil && resp.Message != "" {
		c.success = resp.Message
	} else {
		c.success = "Claim submitted successfully."
	}
	c.form = ClaimForm{}
	return nil
}

// ClearForm resets the form and any error feedback.
func (c *SubmitClaim) ClearForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = ClaimForm{}
	c.failure = ""
}

// State returns a renderable snapshot of the screen. ActivePolicies is the
// subset eligible for a new claim.
func (c *SubmitClaim) State() SubmitClaimState {
	c.mu.Lock()
	defer c.mu.Unlock()
	active := make([]domain.CustomerPolicy, 0, len(c.policies.items))
	for _, policy := range c.policies.items {
		if policy.Status == domain.PolicyActive {
			active = append(active, policy)
		}
	}
	return SubmitClaimState{
		Policies:       append([]domain.CustomerPolicy(nil), c.policies.items...),
		ActivePolicies: active,
		PoliciesState:  c.policies.state,
		PoliciesError:  c.policies.loadError,
		Form:           c.form,
		Submitting:     c.submitting,
		SuccessMessage: c.success,
		ErrorMessage:   c.failure,
	}
}
