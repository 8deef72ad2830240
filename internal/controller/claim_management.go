/**
 * @description
 * This file implements the admin claims review screen: a paged claim
 * listing with a client-side status filter and an inline review form that
 * records an approve or reject verdict with mandatory notes.
 */
package controller

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

const claimPageSize = 50

// ClaimManagement is the view-state controller for the admin claims
// screen.
type ClaimManagement struct {
	mu     sync.Mutex
	view   listView[domain.Claim]
	claims ClaimAPI

	filterStatus    string
	selectedClaimID string
	reviewNotes     string
}

// ClaimManagementState is the renderable snapshot of the screen.
type ClaimManagementState struct {
	Claims          []domain.Claim `json:"claims"`
	State           LoadState      `json:"state"`
	Error           string         `json:"error,omitempty"`
	FilterStatus    string         `json:"filterStatus"`
	Mode            Mode           `json:"mode"`
	SelectedClaimID string         `json:"selectedClaimId,omitempty"`
	ReviewNotes     string         `json:"reviewNotes"`
	Submitting      bool           `json:"submitting"`
	Feedback        string         `json:"feedback,omitempty"`
}

// NewClaimManagement creates the controller in its idle state.
func NewClaimManagement(claims ClaimAPI) *ClaimManagement {
	return &ClaimManagement{
		view:         listView[domain.Claim]{state: StateIdle},
		claims:       claims,
		filterStatus: FilterAll,
	}
}

// Load fetches all claims and re-derives the filtered view.
func (c *ClaimManagement) Load(ctx context.Context) error {
	err := loadInto(ctx, &c.mu, &c.view, func(ctx context.Context) ([]domain.Claim, error) {
		resp, err := c.claims.List(ctx, 0, claimPageSize)
		if err != nil {
			return nil, err
		}
		return resp.Content, nil
	}, "Unable to load claims.", c.pred)
	if err != nil {
		log.Printf("Error loading claims: %v", err)
	}
	return err
}

// SetFilter applies a status filter over the loaded claims without
// re-fetching.
func (c *ClaimManagement) SetFilter(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filterStatus = status
	c.view.refilter(c.pred())
}

func (c *ClaimManagement) pred() func(domain.Claim) bool {
	filter := c.filterStatus
	if filter == FilterAll {
		return nil
	}
	return func(claim domain.Claim) bool { return string(claim.Status) == filter }
}

// ClaimByID returns the loaded claim with the given id.
func (c *ClaimManagement) ClaimByID(id string) (domain.Claim, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, claim := range c.view.items {
		if claim.ID == id {
			return claim, true
		}
	}
	return domain.Claim{}, false
}

// StartReview opens the review form for one claim with empty notes.
func (c *ClaimManagement) StartReview(claimID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedClaimID = claimID
	c.reviewNotes = ""
	c.view.openModal(ModeReview)
}

// CancelReview closes the review form without a verdict.
func (c *ClaimManagement) CancelReview() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedClaimID = ""
	c.reviewNotes = ""
	c.view.closeModal()
}

// SetReviewNotes replaces the review notes with the user's latest input.
func (c *ClaimManagement) SetReviewNotes(notes string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reviewNotes = notes
}

// SubmitReview records a verdict on the selected claim. Notes are
// mandatory; the blocking message names the verdict being attempted and no
// backend call is made.
func (c *ClaimManagement) SubmitReview(ctx context.Context, verdict domain.ClaimStatus, claim domain.Claim) error {
	if verdict != domain.ClaimApproved && verdict != domain.ClaimRejected {
		return fmt.Errorf("unsupported review verdict %q", verdict)
	}

	c.mu.Lock()
	if c.view.submitting {
		c.mu.Unlock()
		return nil
	}
	notes := strings.TrimSpace(c.reviewNotes)
	if notes == "" {
		if verdict == domain.ClaimApproved {
			c.view.feedback = "Please add review notes before approving the claim."
		} else {
			c.view.feedback = "Please explain why the claim is being rejected."
		}
		c.mu.Unlock()
		return nil
	}
	c.view.submitting = true
	c.mu.Unlock()

	_, err := c.claims.Review(ctx, claim.ID, domain.ClaimReviewRequest{
		Status:     verdict,
		AdminNotes: notes,
	})

	c.mu.Lock()
	c.view.submitting = false
	if err != nil {
		log.Printf("Error reviewing claim: %v", err)
		c.view.feedback = "Failed to update claim. Please try again."
		c.mu.Unlock()
		return err
	}
	if verdict == domain.ClaimApproved {
		c.view.feedback = fmt.Sprintf("Claim %s approved successfully.", claim.ClaimNumber)
	} else {
		c.view.feedback = fmt.Sprintf("Claim %s rejected successfully.", claim.ClaimNumber)
	}
	c.selectedClaimID = ""
	c.reviewNotes = ""
	c.view.closeModal()
	c.mu.Unlock()
	return c.Load(ctx)
}

// State returns a renderable snapshot of the screen.
func (c *ClaimManagement) State() ClaimManagementState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ClaimManagementState{
		Claims:          append([]domain.Claim(nil), c.view.filtered...),
		State:           c.view.state,
		Error:           c.view.loadError,
		FilterStatus:    c.filterStatus,
		Mode:            c.view.mode,
		SelectedClaimID: c.selectedClaimID,
		ReviewNotes:     c.reviewNotes,
		Submitting:      c.view.submitting,
		Feedback:        c.view.feedback,
	}
}
